package services

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/lightmeal/calorie-helper/internal/domain"
	"github.com/lightmeal/calorie-helper/internal/energy"
	"github.com/lightmeal/calorie-helper/internal/errors"
	"github.com/lightmeal/calorie-helper/internal/logger"
	"github.com/lightmeal/calorie-helper/internal/storage"
)

// RecordService owns the ordered food-record collection: append-only,
// newest-first by insertion. It also reduces the collection into the
// daily summary the dashboard shows.
type RecordService struct {
	store    storage.Store
	profiles *ProfileService

	mu      sync.RWMutex
	records []domain.FoodRecord
	lastID  int64
}

// NewRecordService loads the persisted record collection. An absent or
// malformed value falls back to an empty collection.
func NewRecordService(ctx context.Context, store storage.Store, profiles *ProfileService) *RecordService {
	s := &RecordService{store: store, profiles: profiles}

	raw, err := store.Get(ctx, storage.KeyRecords)
	if err != nil {
		return s
	}
	var loaded []domain.FoodRecord
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		logger.Warn("Persisted records are malformed, starting empty", "error", err)
		return s
	}
	s.records = loaded
	return s
}

// Add assigns a fresh unique id and creation timestamp, prepends the
// record and persists the collection. Existing entries are never mutated.
func (s *RecordService) Add(ctx context.Context, input domain.RecordInput) (domain.FoodRecord, error) {
	now := time.Now()

	s.mu.Lock()
	record := domain.FoodRecord{
		ID:        s.nextID(now),
		Name:      input.Name,
		Calories:  input.Calories,
		MealType:  input.MealType,
		Quantity:  input.Quantity,
		Timestamp: now,
	}
	s.records = append([]domain.FoodRecord{record}, s.records...)
	snapshot := make([]domain.FoodRecord, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return record, errors.NewInternalError(err)
	}
	if err := s.store.Set(ctx, storage.KeyRecords, string(data)); err != nil {
		return record, errors.NewStorageError(err)
	}
	return record, nil
}

// nextID derives a unique id from the creation instant. Creation is
// user-paced, but the monotonic bump still protects against two adds
// landing on the same nanosecond. Callers must hold s.mu.
func (s *RecordService) nextID(now time.Time) string {
	id := now.UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// All returns a newest-first copy of the collection. The returned slice
// is a snapshot; later mutations never touch it.
func (s *RecordService) All() []domain.FoodRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.FoodRecord, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

// Summary reduces the collection over today's local-time window against
// the profile-derived calorie goal.
func (s *RecordService) Summary(ctx context.Context) (domain.DailySummary, error) {
	return s.SummaryForDay(ctx, time.Now())
}

// SummaryForDay is Summary with an explicit reference day.
func (s *RecordService) SummaryForDay(_ context.Context, day time.Time) (domain.DailySummary, error) {
	profile := s.profiles.Get()

	tdee, err := energy.TDEE(profile)
	if err != nil {
		return domain.DailySummary{}, errors.NewInternalError(err)
	}
	goal, err := energy.DailyGoal(profile)
	if err != nil {
		return domain.DailySummary{}, errors.NewInternalError(err)
	}

	intake := IntakeForDay(s.All(), day)
	return domain.DailySummary{
		Date:       beginningOfDay(day).Format("2006-01-02"),
		BMR:        energy.BMR(profile),
		TDEE:       tdee,
		DailyGoal:  goal,
		Intake:     intake,
		Remaining:  Remaining(goal, intake),
		Percentage: ProgressPercentage(intake, goal),
	}, nil
}

// IntakeForDay sums calories over records whose timestamp falls within
// day's local-time boundaries.
func IntakeForDay(records []domain.FoodRecord, day time.Time) int {
	start := beginningOfDay(day)
	end := start.AddDate(0, 0, 1)

	total := 0
	for _, r := range records {
		ts := r.Timestamp.In(day.Location())
		if !ts.Before(start) && ts.Before(end) {
			total += r.Calories
		}
	}
	return total
}

// ProgressPercentage maps intake against goal into [0, 100]. A
// non-positive goal yields 0 rather than dividing by zero.
func ProgressPercentage(intake, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	pct := float64(intake) / float64(goal) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Remaining is the calorie budget left for the day; negative means over
// budget.
func Remaining(goal, intake int) int {
	return goal - intake
}

func beginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
