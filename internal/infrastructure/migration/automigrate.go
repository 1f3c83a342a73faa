package migration

import (
	"casedesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CaseModel{},
		&models.LogEntryModel{},
		&models.SequenceModel{},
	}
}
