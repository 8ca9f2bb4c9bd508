package utils

import "time"

type TimeServiceInterface interface {
	Now() time.Time
	GetNowDateTimeString() string
}

type TimeHelper struct {
}

func (t *TimeHelper) Now() time.Time {
	return time.Now()
}

func (t *TimeHelper) GetNowDateTimeString() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
