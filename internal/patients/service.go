package patients

import (
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

const dateLayout = "2006-01-02"

// Service keeps the in-memory patient registry. Ids are assigned
// monotonically; state lives for the process only.
type Service struct {
	mu       sync.Mutex
	now      func() time.Time
	nextID   int64
	patients map[int64]Patient
}

// NewService constructs a Service. now may be nil, defaulting to time.Now.
func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		now:      now,
		nextID:   1,
		patients: make(map[int64]Patient),
	}
}

// Register stores a new patient. The vaccination date is the registration
// date advanced by one day per alphabetic rune across name and surname.
func (s *Service) Register(name, surname string) Patient {
	registered := s.now().UTC()
	vaccination := registered.AddDate(0, 0, letterCount(name)+letterCount(surname))

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Patient{
		ID:              s.nextID,
		Name:            name,
		Surname:         surname,
		RegisterDate:    registered.Format(dateLayout),
		VaccinationDate: vaccination.Format(dateLayout),
	}
	s.patients[p.ID] = p
	s.nextID++
	return p
}

// Get returns a patient by id.
func (s *Service) Get(id int64) (Patient, error) {
	if id < 1 {
		return Patient{}, httpx.ErrValidation
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return Patient{}, httpx.ErrNotFound
	}
	return p, nil
}

// letterCount counts alphabetic runes after NFC normalization, so composed
// and decomposed spellings of the same name yield the same count.
func letterCount(s string) int {
	count := 0
	for _, r := range norm.NFC.String(s) {
		if unicode.IsLetter(r) {
			count++
		}
	}
	return count
}
