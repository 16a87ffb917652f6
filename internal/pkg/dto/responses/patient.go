package responses

import "vitalsync-client/internal/app/models"

type PatientListEnvelope struct {
	Data []models.Patient `json:"data"`
}

type PatientEnvelope struct {
	Data models.Patient `json:"data"`
}

type VitalSignsHistoryEnvelope struct {
	Data models.VitalSignsHistory `json:"data"`
}

type PatientStatsEnvelope struct {
	Data models.PatientStats `json:"data"`
}
