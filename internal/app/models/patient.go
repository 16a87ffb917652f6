package models

import "time"

type BloodPressure struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
}

type VitalSigns struct {
	HeartRate        float64       `json:"heartRate"`
	OxygenSaturation float64       `json:"oxygenSaturation"`
	BloodPressure    BloodPressure `json:"bloodPressure"`
	Temperature      float64       `json:"temperature"`
}

// Patient is the server-owned record; the client only ever holds a
// read-mostly cached copy of it.
type Patient struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	PhotoURL           string     `json:"photoUrl,omitempty"`
	Age                int        `json:"age"`
	Condition          string     `json:"condition"`
	CurrentVitalSigns  VitalSigns `json:"currentVitalSigns"`
	TransmissionsCount int        `json:"transmissionsCount"`
	LastTransmission   time.Time  `json:"lastTransmission"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type VitalSignsSample struct {
	Timestamp  time.Time  `json:"timestamp"`
	VitalSigns VitalSigns `json:"vitalSigns"`
}

type VitalSignsHistory struct {
	PatientID string             `json:"patientId"`
	Data      []VitalSignsSample `json:"data"`
}

type PatientStatsAverages struct {
	Last24h   VitalSigns `json:"last24h"`
	Last7Days VitalSigns `json:"last7days"`
	LastMonth VitalSigns `json:"lastMonth"`
}

// PatientStats is derived server-side and recomputed per fetch, never
// mutated in place by the client.
type PatientStats struct {
	Averages PatientStatsAverages `json:"averages"`
}
