package models

import "time"

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

// Goal is the user-defined objective that anchors all tracked data.
type Goal struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      GoalStatus `json:"status"`
	StartDate   string     `json:"start_date"`          // YYYY-MM-DD format
	EndDate     string     `json:"end_date,omitempty"`  // YYYY-MM-DD format

	DailyProgress map[string]DailyProgress `json:"daily_progress"` // keyed by YYYY-MM-DD
	Todos         []TodoItem               `json:"todos"`
	Distractions  []DistractionItem        `json:"distractions"`
	StickyNotes   []StickyNote             `json:"sticky_notes"`
	Resources     []Resource               `json:"resources"`
	Quotes        []Quote                  `json:"quotes"`
	TimeBlocks    []TimeBlock              `json:"time_blocks"`
	Routines      RoutineSettings          `json:"routines"`
	Finance       FinanceData              `json:"finance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StickyNote is a free-form note pinned to a goal.
type StickyNote struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ResourceKind string

const (
	ResourceKindArticle ResourceKind = "article"
	ResourceKindVideo   ResourceKind = "video"
	ResourceKindBook    ResourceKind = "book"
	ResourceKindCourse  ResourceKind = "course"
	ResourceKindOther   ResourceKind = "other"
)

// Resource is a learning resource attached to a goal.
type Resource struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	URL       string       `json:"url,omitempty"`
	Kind      ResourceKind `json:"kind"`
	Done      bool         `json:"done"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Quote is a saved quote, optionally starred for display.
type Quote struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	Starred   bool      `json:"starred"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeBlock is a labelled block of the day reserved for focused work.
type TimeBlock struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Start     string    `json:"start"` // HH:MM format
	End       string    `json:"end"`   // HH:MM format
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
