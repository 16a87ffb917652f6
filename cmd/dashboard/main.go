package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitalsync-client/internal/app/config"
	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/drivers/database"
	"vitalsync-client/internal/app/drivers/logger"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/app/services/auth"
	"vitalsync-client/internal/app/services/datasync"
	"vitalsync-client/internal/app/services/patients"
	"vitalsync-client/internal/app/services/shared/notify"
	"vitalsync-client/internal/app/services/shared/restclient"
	"vitalsync-client/internal/app/services/shared/storage"
	"vitalsync-client/internal/app/services/vitals"
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/dto/requests"
	"vitalsync-client/internal/pkg/exceptions"
	"vitalsync-client/internal/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	authUsecase, schedulerInstance := bootstrapTheApp(&bootstrap)

	initCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(internalConfig.Sync.InitialFetchTimeoutSeconds)*time.Second,
	)
	session, err := authUsecase.Initialize(initCtx)
	cancel()
	if err != nil {
		log.Warn("Startup session reconciliation failed", zap.Error(err))
	}

	if session == nil {
		session = loginFromEnv(authUsecase, log)
	}
	if session != nil {
		log.Info("Authenticated",
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.String(constvars.LoggingSessionRoleKey, string(session.Role)),
		)
	} else {
		log.Warn("Starting without a session; polling stays idle until login")
	}

	schedulerInstance.Start()
	schedulerInstance.Refresh(context.Background())

	renderStop := make(chan struct{})
	go renderLoop(schedulerInstance, internalConfig, log, renderStop)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	close(renderStop)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown finished with errors", zap.Error(err))
	}
}

func bootstrapTheApp(bootstrap *config.Bootstrap) (contracts.AuthUsecase, contracts.SyncScheduler) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Notifications
	notifier := notify.NewLogNotifier(log)

	// HTTP core
	rest := restclient.NewClient(
		internalConfig.API.BaseURL,
		time.Duration(internalConfig.API.RequestTimeoutInSeconds)*time.Second,
		log,
	)

	// Session storage
	var sessionStorage contracts.SessionStorage
	switch internalConfig.Session.StorageDriver {
	case constvars.SessionStorageDriverRedis:
		bootstrap.Redis = database.NewRedisClient(bootstrap.DriverConfig)
		sessionStorage = storage.NewRedisSessionStorage(bootstrap.Redis)
	case constvars.SessionStorageDriverMemory:
		sessionStorage = storage.NewMemorySessionStorage()
	default:
		sessionStorage = storage.NewFileSessionStorage(internalConfig.Session.FilePath, log)
	}

	// Auth
	authClient := auth.NewAuthRestClient(rest, log)
	authUsecase := auth.NewAuthUsecase(authClient, sessionStorage, notifier, internalConfig, log)
	rest.SetTokenProvider(authUsecase.Token)
	rest.SetOnSessionInvalid(func() {
		authUsecase.HandleSessionInvalid(context.Background())
	})

	// Patients
	patientClient := patients.NewPatientRestClient(rest, log)
	patientUsecase := patients.NewPatientUsecase(patientClient, log)

	// Sync
	schedulerInstance := datasync.NewScheduler(patientUsecase, authUsecase.IsAuthenticated, notifier, internalConfig, log)
	bootstrap.SchedulerStop = schedulerInstance.Stop

	return authUsecase, schedulerInstance
}

// loginFromEnv supports unattended kiosk deployments where credentials
// come from the environment instead of an interactive login form.
func loginFromEnv(authUsecase contracts.AuthUsecase, log *zap.Logger) *models.Session {
	email := utils.GetEnvString("VITALSYNC_EMAIL", "")
	password := utils.GetEnvString("VITALSYNC_PASSWORD", "")
	if email == "" || password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	session, err := authUsecase.Login(ctx, &requests.Login{Email: email, Password: password})
	if err != nil {
		log.Error("Environment login failed", zap.String("reason", exceptions.ClientMessage(err)), zap.Error(err))
		return nil
	}
	return session
}

// renderLoop periodically summarizes the cached snapshot by severity, the
// headless stand-in for the dashboard grid.
func renderLoop(schedulerInstance contracts.SyncScheduler, internalConfig *config.InternalConfig, log *zap.Logger, stop <-chan struct{}) {
	interval := time.Duration(internalConfig.Sync.PollIntervalInSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			snapshot := schedulerInstance.Snapshot()
			counts := map[vitals.Tier]int{}
			for _, patient := range snapshot {
				assessment := vitals.Classify(patient.CurrentVitalSigns)
				counts[assessment.Overall]++
			}
			log.Info("Triage summary",
				zap.Int(constvars.LoggingPatientsKey, len(snapshot)),
				zap.Int("critical", counts[vitals.TierCritical]),
				zap.Int("warning", counts[vitals.TierWarning]),
				zap.Int("normal", counts[vitals.TierNormal]),
				zap.Time("last_synced_at", schedulerInstance.LastSyncedAt()),
			)
		}
	}
}
