package models

// Month is a month of the Bikram Sambat calendar. All fee periods are keyed
// by a (Month, Year) pair; ordering lives in the nepali package.
type Month string

const (
	Baisakh Month = "Baisakh"
	Jestha  Month = "Jestha"
	Ashad   Month = "Ashad"
	Shrawan Month = "Shrawan"
	Bhadra  Month = "Bhadra"
	Ashoj   Month = "Ashoj"
	Kartik  Month = "Kartik"
	Mangsir Month = "Mangsir"
	Poush   Month = "Poush"
	Magh    Month = "Magh"
	Falgun  Month = "Falgun"
	Chaitra Month = "Chaitra"
)

// PaymentStatus describes how a student stands for one period.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPartial PaymentStatus = "partial"
	StatusPending PaymentStatus = "pending"
)
