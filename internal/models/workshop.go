package models

// WorkshopSession is one scheduled workshop meeting of a course as served by
// the workshop API
type WorkshopSession struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Instructor  string `json:"instructor"`
	Description string `json:"description,omitempty"`
}

// HasDescription reports whether the session carries a description
func (w *WorkshopSession) HasDescription() bool {
	return w.Description != ""
}
