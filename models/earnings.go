package models

// JobSummary is one line of the recent-jobs list on the earnings view.
type JobSummary struct {
	BookingID    string  `json:"bookingId"`
	CustomerName string  `json:"customerName"`
	Skill        string  `json:"skillNeeded"`
	CompletedAt  string  `json:"completedAt"`
	Earned       float64 `json:"earned"`
}

// EarningsResponse summarises a worker's completed-booking history.
type EarningsResponse struct {
	WorkerName       string       `json:"workerName"`
	TotalEarnings    float64      `json:"totalEarnings"`
	TotalJobsDone    int          `json:"totalJobsDone"`
	JobsThisWeek     int          `json:"jobsThisWeek"`
	EarningsThisWeek float64      `json:"earningsThisWeek"`
	AverageRating    float64      `json:"averageRating"`
	PricePerHour     float64      `json:"pricePerHour"`
	RecentJobs       []JobSummary `json:"recentJobs"`
}

// PredictionStats are the aggregated weekly numbers handed to the
// income-forecast model.
type PredictionStats struct {
	WorkerName            string
	Skills                []string
	Rating                float64
	PricePerHour          float64
	TotalJobsDone         int
	JobsThisWeek          int
	JobsLastWeek          int
	CurrentWeekEarnings   float64
	LastWeekEarnings      float64
	AverageWeeklyEarnings float64
}

// PredictionResponse carries the projected figure plus the narrative
// analysis returned by the forecast model.
type PredictionResponse struct {
	WorkerName            string  `json:"workerName"`
	PredictedWeeklyIncome float64 `json:"predictedWeeklyIncome"`
	Analysis              string  `json:"analysis"`
	CurrentWeekEarnings   float64 `json:"currentWeekEarnings"`
	LastWeekEarnings      float64 `json:"lastWeekEarnings"`
	AverageWeeklyEarnings float64 `json:"averageWeeklyEarnings"`
	TotalJobsDone         int     `json:"totalJobsDone"`
	AverageRating         float64 `json:"averageRating"`
}
