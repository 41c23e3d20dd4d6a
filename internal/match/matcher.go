package match

import (
	"fmt"
	"log"
	"time"

	"edtsync/internal/schedule"
)

// Config carries every scoring and resolution knob of the engine. The engine
// itself holds no global state; build one Config at startup and pass it in.
type Config struct {
	Strategy       string
	MinScore       float64
	TitleWeight    float64
	UEBonus        float64
	DayBonus       float64
	TypeBonus      float64
	NearTimeBonus  float64
	NearTimeWindow time.Duration
	UEPrefilter    bool
}

func DefaultConfig() Config {
	return Config{
		Strategy:       StrategyExhaustive,
		MinScore:       0.3,
		TitleWeight:    0.6,
		UEBonus:        0.5,
		DayBonus:       0.1,
		TypeBonus:      0.3,
		NearTimeBonus:  0.1,
		NearTimeWindow: 30 * time.Minute,
		UEPrefilter:    true,
	}
}

// Decision is the engine's verdict for one course entry. Every input course
// gets exactly one Decision; unresolved ones carry the UnknownLocation
// sentinel and a zero score.
type Decision struct {
	Course      int // position within the input course sequence
	Date        string
	CourseTitle string
	RoomSummary string
	Location    string
	Score       float64
	Resolved    bool
}

// Matcher reconciles a course-roster feed with a room-allocation feed,
// pairing same-day entries by textual and temporal similarity.
type Matcher interface {
	Resolve(courses []schedule.CourseEntry, rooms []schedule.RoomEntry) []Decision
}

type matcher struct {
	cfg      Config
	resolver resolver
	location *time.Location
}

func New(cfg Config, location *time.Location) (Matcher, error) {
	resolver, err := newResolver(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	if cfg.MinScore < 0 {
		return nil, fmt.Errorf("min-score must be non-negative: %v", cfg.MinScore)
	}
	if location == nil {
		location = time.Local
	}

	return &matcher{
		cfg:      cfg,
		resolver: resolver,
		location: location,
	}, nil
}

type dayOutcome struct {
	partition dayPartition
	scores    [][]float64
	assigned  []int
}

func (m *matcher) Resolve(courses []schedule.CourseEntry, rooms []schedule.RoomEntry) []Decision {
	//** Initialize every course as unresolved: the engine always returns a
	//** complete mapping, whatever the evidence looks like
	decisions := make([]Decision, len(courses))
	for i, course := range courses {
		decisions[i] = Decision{
			Course:      i,
			CourseTitle: course.Title,
			Location:    schedule.UnknownLocation,
		}
		if !course.Start.IsZero() {
			decisions[i].Date = course.Start.In(m.location).Format(dayFormat)
		}
	}

	//** Partition both feeds by calendar date
	partitions, droppedCourses, droppedRooms := partitionByDay(courses, rooms, m.location)
	if len(droppedCourses) > 0 {
		log.Printf("dropped %v course entries without a usable timestamp", len(droppedCourses))
	}
	if len(droppedRooms) > 0 {
		log.Printf("dropped %v room entries without a usable timestamp", len(droppedRooms))
	}
	if len(partitions) == 0 {
		return decisions
	}

	//** Resolve partitions on separate goroutines; each one owns its weight
	//** table and score matrix, so no locking is needed
	outcomes := make(chan dayOutcome)
	for _, partition := range partitions {
		go func(partition dayPartition) {
			outcomes <- m.resolveDay(partition, courses, rooms)
		}(partition)
	}

	collected := 0
	for outcome := range outcomes {
		for k, room := range outcome.assigned {
			if room == Unresolved {
				continue
			}
			decision := &decisions[outcome.partition.courses[k]]
			roomEntry := rooms[outcome.partition.rooms[room]]
			decision.RoomSummary = roomEntry.Summary
			decision.Score = outcome.scores[k][room]
			decision.Resolved = true
			if roomEntry.Location != "" {
				decision.Location = roomEntry.Location
			}
		}

		if collected++; collected == len(partitions) {
			close(outcomes)
		}
	}

	return decisions
}

func (m *matcher) resolveDay(partition dayPartition, courses []schedule.CourseEntry, rooms []schedule.RoomEntry) dayOutcome {
	// A day with no room candidates resolves without invoking the scorer
	if len(partition.courses) == 0 || len(partition.rooms) == 0 {
		assigned := make([]int, len(partition.courses))
		for i := range assigned {
			assigned[i] = Unresolved
		}
		return dayOutcome{partition: partition, assigned: assigned}
	}

	courseFeats := make([]features, len(partition.courses))
	for k, i := range partition.courses {
		courseFeats[k] = courseFeatures(courses[i], m.location)
	}
	roomFeats := make([]features, len(partition.rooms))
	for k, i := range partition.rooms {
		roomFeats[k] = roomFeatures(rooms[i], m.location)
	}

	// The weight table is local to the day: the relevant noise floor is the
	// day's own corpus, not the whole horizon
	tokenSets := make([][]string, 0, len(courseFeats)+len(roomFeats))
	for _, feats := range courseFeats {
		tokenSets = append(tokenSets, feats.tokens)
	}
	for _, feats := range roomFeats {
		tokenSets = append(tokenSets, feats.tokens)
	}
	weights := ComputeWeights(tokenSets)

	scores := m.cfg.scoreMatrix(courseFeats, roomFeats, weights)
	assigned := m.resolver.resolve(scores, m.cfg.MinScore)

	return dayOutcome{partition: partition, scores: scores, assigned: assigned}
}
