package workflow

import (
	"errors"

	"go.uber.org/zap"

	"swiperent/internal/mailer"
	"swiperent/internal/model"
	"swiperent/internal/store"
)

var (
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrProfileIncomplete = errors.New("profile incomplete")
	ErrDocumentsMissing  = errors.New("no verified documents")
)

// DuplicateApplicationError carries the existing application so the
// handler can return it alongside the rejection.
type DuplicateApplicationError struct {
	Existing *model.Application
}

func (e *DuplicateApplicationError) Error() string {
	return "application already exists"
}

// ApplicationWorkflow runs the one-click apply sequence. The checks and the
// final insert are not wrapped in a transaction; two concurrent submissions
// for the same pair can both pass the duplicate check. That race exists in
// the shipped system and is kept.
type ApplicationWorkflow struct {
	applications *store.ApplicationStore
	apartments   *store.ApartmentStore
	profiles     *store.ProfileStore
	documents    *store.DocumentStore
	mail         *mailer.Mailer
	log          *zap.Logger
}

func NewApplicationWorkflow(
	applications *store.ApplicationStore,
	apartments *store.ApartmentStore,
	profiles *store.ProfileStore,
	documents *store.DocumentStore,
	mail *mailer.Mailer,
	log *zap.Logger,
) *ApplicationWorkflow {
	return &ApplicationWorkflow{
		applications: applications,
		apartments:   apartments,
		profiles:     profiles,
		documents:    documents,
		mail:         mail,
		log:          log,
	}
}

// Submit validates and inserts a new application. Check order is part of
// the contract: duplicate, then apartment existence, then profile, then
// verified documents.
func (w *ApplicationWorkflow) Submit(userID uint, apartmentID int64, propertyManagerEmail string) (*model.Application, error) {
	existing, err := w.applications.GetByUserAndApartment(userID, apartmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateApplicationError{Existing: existing}
	}

	if _, err := w.apartments.GetByID(apartmentID); err != nil {
		if errors.Is(err, store.ErrApartmentNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, err
	}

	profile, err := w.profiles.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}

	docs, err := w.documents.ListVerified(userID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrDocumentsMissing
	}

	docIDs := make([]uint, 0, len(docs))
	for _, d := range docs {
		docIDs = append(docIDs, d.ID)
	}
	app := &model.Application{
		UserID:               userID,
		ApartmentID:          apartmentID,
		Documents:            docIDs,
		PropertyManagerEmail: propertyManagerEmail,
		Status:               model.ApplicationStatusPending,
	}
	if err := w.applications.Create(app); err != nil {
		return nil, err
	}

	if w.mail != nil && w.mail.Enabled() && propertyManagerEmail != "" {
		if err := w.mail.SendApplicationNotice(propertyManagerEmail, app, profile); err != nil {
			w.log.Warn("property manager notification failed",
				zap.Uint("application_id", app.ID),
				zap.Error(err))
		}
	}
	return app, nil
}

// CheckResult reports whether a user has applied to an apartment.
type CheckResult struct {
	HasApplied  bool               `json:"hasApplied"`
	Application *model.Application `json:"application"`
}

// Check looks up the application for the pair without side effects.
func (w *ApplicationWorkflow) Check(userID uint, apartmentID int64) (*CheckResult, error) {
	app, err := w.applications.GetByUserAndApartment(userID, apartmentID)
	if err != nil {
		return nil, err
	}
	return &CheckResult{HasApplied: app != nil, Application: app}, nil
}
