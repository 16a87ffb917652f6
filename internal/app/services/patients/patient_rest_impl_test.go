package patients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vitalsync-client/internal/app/services/shared/restclient"
	"vitalsync-client/internal/pkg/dto/requests"
	"vitalsync-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPatientClientAgainst(t *testing.T, handler http.Handler) *patientRestClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	rest := restclient.NewClient(server.URL, 5*time.Second, zap.NewNop())
	return NewPatientRestClient(rest, zap.NewNop()).(*patientRestClient)
}

func TestGetAllPatientsDecodesEnvelope(t *testing.T) {
	client := newPatientClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/patients", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"p1","name":"Ana","age":52,"condition":"post-op","currentVitalSigns":{"heartRate":72,"oxygenSaturation":98.5,"bloodPressure":{"systolic":118,"diastolic":76},"temperature":36.6}},
			{"id":"p2","name":"Bruno","age":67,"condition":"cardiac"}
		]}`))
	}))

	patients, err := client.GetAllPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Ana", patients[0].Name)
	assert.InDelta(t, 72, patients[0].CurrentVitalSigns.HeartRate, 0.001)
	assert.InDelta(t, 98.5, patients[0].CurrentVitalSigns.OxygenSaturation, 0.001)
	assert.InDelta(t, 118, patients[0].CurrentVitalSigns.BloodPressure.Systolic, 0.001)
}

func TestGetPatientUsesIDInPath(t *testing.T) {
	client := newPatientClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/patients/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"p1","name":"Ana"}}`))
	}))

	patient, err := client.GetPatient(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", patient.ID)
}

func TestCreatePatientSendsMultipartForm(t *testing.T) {
	client := newPatientClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Ana", r.FormValue("name"))
		assert.Equal(t, "52", r.FormValue("age"))
		assert.Equal(t, "post-op", r.FormValue("condition"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "ana.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"p9","name":"Ana"}}`))
	}))

	patient, err := client.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:          "Ana",
		Age:           52,
		Condition:     "post-op",
		Photo:         strings.NewReader("jpegbytes"),
		PhotoFilename: "ana.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "p9", patient.ID)
}

func TestUpdatePatientOmitsUnsetFields(t *testing.T) {
	var gotBody string
	client := newPatientClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"p1","name":"Ana Maria"}}`))
	}))

	name := "Ana Maria"
	patient, err := client.UpdatePatient(context.Background(), "p1", &requests.UpdatePatient{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", patient.Name)
	assert.JSONEq(t, `{"name":"Ana Maria"}`, gotBody)
}

func TestDeletePatient(t *testing.T) {
	var gotMethod, gotPath string
	client := newPatientClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeletePatient(context.Background(), "p1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/patients/p1", gotPath)
}

func TestGetPatientHistoryAndStats(t *testing.T) {
	client := newPatientClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/patients/p1/history":
			w.Write([]byte(`{"data":{"patientId":"p1","data":[{"timestamp":"2026-08-30T10:00:00Z","vitalSigns":{"heartRate":80}}]}}`))
		case "/patients/p1/stats":
			w.Write([]byte(`{"data":{"averages":{"last24h":{"heartRate":78},"last7days":{"heartRate":76},"lastMonth":{"heartRate":75}}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	history, err := client.GetPatientHistory(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", history.PatientID)
	require.Len(t, history.Data, 1)
	assert.InDelta(t, 80, history.Data[0].VitalSigns.HeartRate, 0.001)

	stats, err := client.GetPatientStats(context.Background(), "p1")
	require.NoError(t, err)
	assert.InDelta(t, 78, stats.Averages.Last24h.HeartRate, 0.001)
	assert.InDelta(t, 76, stats.Averages.Last7Days.HeartRate, 0.001)
}

func TestServerRejectionMessageSurvivesVerbatim(t *testing.T) {
	client := newPatientClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"a patient with this name already exists"}`))
	}))

	_, err := client.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:      "Ana",
		Age:       52,
		Condition: "post-op",
	})
	require.Error(t, err)
	assert.Equal(t, "a patient with this name already exists", exceptions.ClientMessage(err))
}
