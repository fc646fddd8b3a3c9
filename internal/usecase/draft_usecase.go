package usecase

import (
	"errors"
	"sync"
	"time"

	"mecanique_mobile/internal/availability"
	"mecanique_mobile/internal/distance"
	"mecanique_mobile/internal/domain/entities"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errors.New("draft not found")

// Draft is the live state of one in-progress quoting session: the last
// applied distance for the typed address and the last applied slot grid for
// the selected date. Drafts are per-session scratch state, never persisted.
type Draft struct {
	ID         string              `json:"id"`
	Address    string              `json:"address"`
	DistanceKm float64             `json:"distance_km"`
	Date       time.Time           `json:"date,omitempty"`
	Slots      []entities.TimeSlot `json:"slots"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// IDraftUseCase models the reactive parts of the quoting form. Address
// edits trigger debounced distance resolution; date picks trigger slot
// loads. Both follow the latest-wins discipline: a superseded in-flight
// computation can never overwrite the state of a newer one.

type IDraftUseCase interface {
	Create() Draft
	Get(id string) (Draft, error)
	SetAddress(id, address string) error
	SetDate(id string, date time.Time) error
	Delete(id string) error
}

type DraftUseCase struct {
	resolve  distance.ResolveFunc
	load     availability.LoadFunc
	debounce time.Duration

	mu     sync.Mutex
	drafts map[string]*draftState
}

type draftState struct {
	mu      sync.Mutex
	draft   Draft
	session *distance.Session
	loader  *availability.Loader
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(resolve distance.ResolveFunc, load availability.LoadFunc, debounce time.Duration) *DraftUseCase {
	if debounce <= 0 {
		debounce = distance.DefaultDebounce
	}
	return &DraftUseCase{
		resolve:  resolve,
		load:     load,
		debounce: debounce,
		drafts:   make(map[string]*draftState),
	}
}

func (u *DraftUseCase) Create() Draft {
	st := &draftState{
		draft: Draft{
			ID:        uuid.NewString(),
			Slots:     []entities.TimeSlot{},
			UpdatedAt: time.Now().UTC(),
		},
	}
	st.session = distance.NewSession(u.resolve, u.debounce, func(km float64) {
		st.mu.Lock()
		st.draft.DistanceKm = km
		st.draft.UpdatedAt = time.Now().UTC()
		st.mu.Unlock()
	})
	st.loader = availability.NewLoader(u.load, func(date time.Time, slots []entities.TimeSlot) {
		st.mu.Lock()
		st.draft.Date = date
		st.draft.Slots = slots
		st.draft.UpdatedAt = time.Now().UTC()
		st.mu.Unlock()
	})

	u.mu.Lock()
	u.drafts[st.draft.ID] = st
	u.mu.Unlock()

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.draft
}

func (u *DraftUseCase) Get(id string) (Draft, error) {
	st, err := u.state(id)
	if err != nil {
		return Draft{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.draft, nil
}

// SetAddress records the new address and arms the debounced resolution.
// The stored distance only changes once the newest resolution lands.
func (u *DraftUseCase) SetAddress(id, address string) error {
	st, err := u.state(id)
	if err != nil {
		return err
	}
	st.mu.Lock()
	st.draft.Address = address
	st.draft.UpdatedAt = time.Now().UTC()
	st.mu.Unlock()

	st.session.AddressChanged(address)
	return nil
}

// SetDate starts an availability load for the new date; a previously
// selected date's in-flight load is superseded.
func (u *DraftUseCase) SetDate(id string, date time.Time) error {
	st, err := u.state(id)
	if err != nil {
		return err
	}
	st.loader.DateChanged(date)
	return nil
}

func (u *DraftUseCase) Delete(id string) error {
	u.mu.Lock()
	st, ok := u.drafts[id]
	if ok {
		delete(u.drafts, id)
	}
	u.mu.Unlock()
	if !ok {
		return ErrDraftNotFound
	}

	st.session.Close()
	st.loader.Close()
	return nil
}

func (u *DraftUseCase) state(id string) (*draftState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	st, ok := u.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return st, nil
}
