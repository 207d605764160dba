package domain

// PageView is the navigation and display bundle for one resolved stage.
// JSON field names follow the contract consumed by the lesson front-end.
// swagger:model PageView
type PageView struct {
	IsFirst   bool  `json:"atStart"`
	IsLast    bool  `json:"atEnd"`
	LastIndex int   `json:"lastPage"`
	Slide     Slide `json:"stageData"`
	PrevIndex int   `json:"pagePrev"`
	Index     int   `json:"pageCurrent"`
	NextIndex int   `json:"pageNext"`
}

// StageSummary describes one stage in the lesson overview.
// swagger:model StageSummary
type StageSummary struct {
	Index   int    `json:"index"`
	Summary string `json:"summary"`
}

// LessonOverview lists every stage of the lesson.
// swagger:model LessonOverview
type LessonOverview struct {
	StageCount int            `json:"stageCount"`
	LastPage   int            `json:"lastPage"`
	Stages     []StageSummary `json:"stages"`
}

// StageService resolves stage indices against the lesson's slide sequence.
type StageService interface {
	// Resolve parses rawIndex and returns the PageView for that stage.
	// It returns ErrNotFound for non-numeric or out-of-range input.
	Resolve(rawIndex string) (*PageView, error)
	// Overview returns a summary of every stage.
	Overview() *LessonOverview
}
