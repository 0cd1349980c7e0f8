package birthday

// DailyRow is the projection of a birthday record whose date of birth falls
// on the same month and day as a reference date (year ignored).
type DailyRow struct {
	Name    string
	EmailTo string
}

// MonthlyRow is the projection of a birthday record whose date of birth falls
// within the same month as a reference date.
type MonthlyRow struct {
	Name        string
	BirthdayDay int // day of month, 1-31
	EmailTo     string
}
