package patients

import (
	"context"
	"strings"

	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/pkg/dto/requests"
	"vitalsync-client/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientClient contracts.PatientClient
	Log           *zap.Logger
	Validate      *validator.Validate
}

func NewPatientUsecase(patientClient contracts.PatientClient, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientClient: patientClient,
		Log:           logger,
		Validate:      validator.New(),
	}
}

func (uc *patientUsecase) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientClient.GetAllPatients(ctx)
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	return uc.PatientClient.GetPatient(ctx, patientID)
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.PatientClient.CreatePatient(ctx, request)
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.PatientClient.UpdatePatient(ctx, patientID, request)
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	return uc.PatientClient.DeletePatient(ctx, patientID)
}

func (uc *patientUsecase) GetPatientHistory(ctx context.Context, patientID string) (*models.VitalSignsHistory, error) {
	return uc.PatientClient.GetPatientHistory(ctx, patientID)
}

func (uc *patientUsecase) GetPatientStats(ctx context.Context, patientID string) (*models.PatientStats, error) {
	return uc.PatientClient.GetPatientStats(ctx, patientID)
}

// FilterByName narrows a patient snapshot to names containing term,
// case-insensitively. An empty term returns the snapshot unchanged.
func FilterByName(patients []models.Patient, term string) []models.Patient {
	if term == "" {
		return patients
	}
	needle := strings.ToLower(term)
	filtered := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if strings.Contains(strings.ToLower(patient.Name), needle) {
			filtered = append(filtered, patient)
		}
	}
	return filtered
}
