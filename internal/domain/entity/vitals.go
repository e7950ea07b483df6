package entity

// Vital statuses derived from the generated readings.
const (
	VitalStatusNormal = "Normal"
	VitalStatusLow    = "Low"
	VitalStatusWatch  = "Watch"
)

// HeartRate is the heart rate sub-object of a vitals record.
type HeartRate struct {
	Value     int    `json:"value"`
	Unit      string `json:"unit"`
	Status    string `json:"status"`
	UpdatedAt int64  `json:"updated_at"`
}

// BloodPressure is the blood pressure sub-object of a vitals record.
type BloodPressure struct {
	Systolic  int    `json:"systolic"`
	Unit      string `json:"unit"`
	Status    string `json:"status"`
	UpdatedAt int64  `json:"updated_at"`
}

// Vitals is the nested structure stored under users/{user_id}/vitals.
// Both sub-objects are always written together as one full replace.
type Vitals struct {
	HeartRate     HeartRate     `json:"heart_rate"`
	BloodPressure BloodPressure `json:"blood_pressure"`
}
