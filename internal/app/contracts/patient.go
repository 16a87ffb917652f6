package contracts

import (
	"context"

	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/pkg/dto/requests"
)

type PatientClient interface {
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	GetPatientHistory(ctx context.Context, patientID string) (*models.VitalSignsHistory, error)
	GetPatientStats(ctx context.Context, patientID string) (*models.PatientStats, error)
}

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	GetPatientHistory(ctx context.Context, patientID string) (*models.VitalSignsHistory, error)
	GetPatientStats(ctx context.Context, patientID string) (*models.PatientStats, error)
}
