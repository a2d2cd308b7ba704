package request

type ListFieldsQuery struct {
	IncludeInactive bool `form:"include_inactive"`
}

type AvailabilityQuery struct {
	Date string `form:"date"`
	Time string `form:"time"`
}

type ScheduleQuery struct {
	Date string `form:"date"`
}
