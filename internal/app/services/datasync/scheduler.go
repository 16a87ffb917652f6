package datasync

import (
	"context"
	"sync"
	"time"

	"vitalsync-client/internal/app/config"
	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Scheduler keeps the patient collection fresh through a fixed-interval
// poll plus on-demand refresh. At most one fetch is outstanding at any
// time; a refresh requested while one is in flight is coalesced into a
// no-op. Every fetch carries a monotonically increasing sequence number
// and a completion is applied only if its sequence is the highest
// applied so far, so a slow stale response can never clobber a newer
// snapshot.
type scheduler struct {
	interval time.Duration

	Patients   contracts.PatientUsecase
	Authorized func() bool
	Notifier   contracts.Notifier
	Log        *zap.Logger

	// throttles the manual refresh button, ticks are not subject to it
	manualLimiter *rate.Limiter

	mu             sync.Mutex
	started        bool
	stopped        bool
	inFlight       bool
	lastIssuedSeq  uint64
	lastAppliedSeq uint64
	snapshot       []models.Patient
	lastSyncedAt   time.Time
	stopCh         chan struct{}
}

func NewScheduler(
	patientUsecase contracts.PatientUsecase,
	authorized func() bool,
	notifier contracts.Notifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SyncScheduler {
	perMinute := internalConfig.Sync.ManualRefreshesPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	burst := internalConfig.Sync.ManualRefreshBurst
	if burst <= 0 {
		burst = 1
	}
	return &scheduler{
		interval:      time.Duration(internalConfig.Sync.PollIntervalInSeconds) * time.Second,
		Patients:      patientUsecase,
		Authorized:    authorized,
		Notifier:      notifier,
		Log:           logger,
		manualLimiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
		stopCh:        make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	s.Log.Info("scheduler.Start polling started",
		zap.Duration("interval", s.interval),
	)
	go s.loop()
}

func (s *scheduler) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.refresh(context.Background(), false)
		}
	}
}

// Refresh is the manual refresh entry point. Coalesced with any fetch
// already in flight.
func (s *scheduler) Refresh(ctx context.Context) {
	if !s.manualLimiter.Allow() {
		s.Log.Debug("scheduler.Refresh throttled")
		return
	}
	s.refresh(ctx, true)
}

func (s *scheduler) refresh(ctx context.Context, manual bool) {
	s.mu.Lock()
	if s.stopped || s.inFlight {
		s.mu.Unlock()
		return
	}
	if s.Authorized != nil && !s.Authorized() {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.lastIssuedSeq++
	seq := s.lastIssuedSeq
	s.mu.Unlock()

	s.Log.Debug("scheduler.refresh fetch issued",
		zap.Uint64(constvars.LoggingSequenceKey, seq),
		zap.Bool(constvars.LoggingManualKey, manual),
	)
	go s.run(ctx, seq, manual)
}

func (s *scheduler) run(ctx context.Context, seq uint64, manual bool) {
	patients, err := s.Patients.GetAllPatients(ctx)

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.mu.Unlock()
		s.Log.Warn("scheduler.run "+constvars.ErrDevSchedulerFetchFailed,
			zap.Uint64(constvars.LoggingSequenceKey, seq),
			zap.Bool(constvars.LoggingManualKey, manual),
			zap.Error(err),
		)
		// the cache stays as it was; polling degrades to stale data
		// plus a non-blocking warning
		s.Notifier.Error(exceptions.ClientMessage(err))
		return
	}
	if s.stopped || seq <= s.lastAppliedSeq {
		// stale or post-stop completion, discard
		s.mu.Unlock()
		s.Log.Debug("scheduler.run discarding stale fetch result",
			zap.Uint64(constvars.LoggingSequenceKey, seq),
		)
		return
	}
	s.lastAppliedSeq = seq
	s.snapshot = append([]models.Patient(nil), patients...)
	s.lastSyncedAt = time.Now()
	s.mu.Unlock()

	s.Log.Debug("scheduler.run snapshot replaced",
		zap.Uint64(constvars.LoggingSequenceKey, seq),
		zap.Int(constvars.LoggingPatientsKey, len(patients)),
	)
	if manual {
		s.Notifier.Success(constvars.SuccessPatientListRefreshed)
	}
}

// Stop cancels future ticks. In-flight fetches are not aborted; their
// results are discarded when they land. Safe to call more than once.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.mu.Unlock()

	s.Log.Info("scheduler.Stop polling stopped")
}

// Snapshot returns a copy of the cached patient collection; callers can
// hold it as long as they like without racing the next sync.
func (s *scheduler) Snapshot() []models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Patient(nil), s.snapshot...)
}

func (s *scheduler) LastSyncedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSyncedAt
}
