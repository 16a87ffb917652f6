package patients

import (
	"context"
	"fmt"
	"strconv"

	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/app/services/shared/restclient"
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/dto/requests"
	"vitalsync-client/internal/pkg/dto/responses"
	"vitalsync-client/internal/pkg/exceptions"
	"vitalsync-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientRestClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewPatientRestClient(rest *restclient.Client, logger *zap.Logger) contracts.PatientClient {
	return &patientRestClient{
		Rest: rest,
		Log:  logger,
	}
}

func (c *patientRestClient) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Debug("patientRestClient.GetAllPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Rest.Get(ctx, constvars.EndpointPatients)
	if err != nil {
		return nil, err
	}

	envelope := new(responses.PatientListEnvelope)
	if err := json.Unmarshal(body, envelope); err != nil {
		c.Log.Error("patientRestClient.GetAllPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.EndpointPatients)
	}

	c.Log.Debug("patientRestClient.GetAllPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientsKey, len(envelope.Data)),
	)
	return envelope.Data, nil
}

func (c *patientRestClient) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("patientRestClient.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	body, err := c.Rest.Get(ctx, patientPath(patientID))
	if err != nil {
		return nil, err
	}
	return decodePatient(body, patientPath(patientID))
}

func (c *patientRestClient) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("patientRestClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	fields := map[string]string{
		constvars.MultipartFieldName:      request.Name,
		constvars.MultipartFieldAge:       strconv.Itoa(request.Age),
		constvars.MultipartFieldCondition: request.Condition,
	}
	body, err := c.Rest.PostMultipart(ctx, constvars.EndpointPatients, fields, constvars.MultipartFieldPhoto, request.PhotoFilename, request.Photo)
	if err != nil {
		return nil, err
	}

	patient, err := decodePatient(body, constvars.EndpointPatients)
	if err != nil {
		return nil, err
	}
	c.Log.Info("patientRestClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientRestClient) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("patientRestClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	body, err := c.Rest.Put(ctx, patientPath(patientID), request)
	if err != nil {
		return nil, err
	}
	return decodePatient(body, patientPath(patientID))
}

func (c *patientRestClient) DeletePatient(ctx context.Context, patientID string) error {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("patientRestClient.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := c.Rest.Delete(ctx, patientPath(patientID))
	return err
}

func (c *patientRestClient) GetPatientHistory(ctx context.Context, patientID string) (*models.VitalSignsHistory, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("patientRestClient.GetPatientHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path := patientPath(patientID) + "/history"
	body, err := c.Rest.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	envelope := new(responses.VitalSignsHistoryEnvelope)
	if err := json.Unmarshal(body, envelope); err != nil {
		c.Log.Error("patientRestClient.GetPatientHistory error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, path)
	}
	return &envelope.Data, nil
}

func (c *patientRestClient) GetPatientStats(ctx context.Context, patientID string) (*models.PatientStats, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("patientRestClient.GetPatientStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path := patientPath(patientID) + "/stats"
	body, err := c.Rest.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	envelope := new(responses.PatientStatsEnvelope)
	if err := json.Unmarshal(body, envelope); err != nil {
		c.Log.Error("patientRestClient.GetPatientStats error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, path)
	}
	return &envelope.Data, nil
}

func patientPath(patientID string) string {
	return fmt.Sprintf("%s/%s", constvars.EndpointPatients, patientID)
}

func decodePatient(body []byte, source string) (*models.Patient, error) {
	envelope := new(responses.PatientEnvelope)
	if err := json.Unmarshal(body, envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, source)
	}
	return &envelope.Data, nil
}
