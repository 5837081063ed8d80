package dto

// StudentStatusCounts breaks student totals down per status variant.
type StudentStatusCounts struct {
	Enrolled  int64 `json:"enrolled"`
	Completed int64 `json:"completed"`
	Dropped   int64 `json:"dropped"`
}

// StudentStats summarizes the students collection.
type StudentStats struct {
	Total    int64               `json:"total"`
	ByStatus StudentStatusCounts `json:"byStatus"`
}

// BookStats summarizes the books collection.
type BookStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Borrowed  int64 `json:"borrowed"`
}

// StatsResponse is the payload of GET /stats.
type StatsResponse struct {
	Database string       `json:"database"`
	Students StudentStats `json:"students"`
	Books    BookStats    `json:"books"`
}
