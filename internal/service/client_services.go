package service

import (
	"github.com/MKhiriev/go-career-path/internal/adapter"
	"github.com/MKhiriev/go-career-path/internal/config"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/store"
)

// ClientServices groups the services of the client.
type ClientServices struct {
	IdentityService IdentityService
	SessionService  SessionService
	ProfileService  ProfileService
	PlanService     PlanService
	JobService      JobService
}

func NewClientServices(storages *store.ClientStorages, generator adapter.Generator, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	identitySvc := NewIdentityService(storages.IdentityRepository, storages.ProfileRepository, cfg.AuthLatency, logger)

	return &ClientServices{
		IdentityService: identitySvc,
		SessionService:  NewSessionService(identitySvc, storages.SessionStore, logger),
		ProfileService:  NewProfileService(identitySvc, generator, logger),
		PlanService:     NewPlanService(generator, logger),
		JobService:      NewJobService(generator, logger),
	}
}
