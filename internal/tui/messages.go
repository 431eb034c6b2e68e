package tui

import (
	"github.com/MKhiriev/go-career-path/models"
)

// Every message produced by a command carries the session epoch it was
// dispatched in. Results of an epoch that is no longer current are dropped.

type startupMsg struct {
	user       string
	hasSession bool
	profile    *models.Profile
	err        error
}

type authResultMsg struct {
	epoch    uint64
	username string
	signup   bool
	result   models.AuthResult
	profile  *models.Profile
}

type extractedMsg struct {
	epoch uint64
	text  string
	err   error
}

type profileSavedMsg struct {
	epoch   uint64
	profile models.Profile
	err     error
}

type planLoadedMsg struct {
	epoch   uint64
	request int
	plan    []models.LearningModule
	err     error
}

type jobsLoadedMsg struct {
	epoch   uint64
	request int
	jobs    []models.Job
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
