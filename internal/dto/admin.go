package dto

import (
	"finance-tracker/internal/config"
	"finance-tracker/internal/models"
)

// DevelopersFromConfig converts the configured team into response models
func DevelopersFromConfig(developers []config.Developer) []models.Developer {
	out := make([]models.Developer, 0, len(developers))
	for _, d := range developers {
		out = append(out, models.Developer{FirstName: d.FirstName, LastName: d.LastName})
	}
	return out
}
