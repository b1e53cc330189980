package api

type registerInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"max=80"`
}

type loginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type checkinCreateInput struct {
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	MoodScore int    `json:"mood_score" validate:"required,min=1,max=5"`
	Note      string `json:"note" validate:"max=2000"`
}

type checkinCorrectInput struct {
	MoodScore int    `json:"mood_score" validate:"required,min=1,max=5"`
	Note      string `json:"note" validate:"max=2000"`
}

type symptomLogInput struct {
	Variant     string   `json:"variant" validate:"required,oneof=dizziness lifestyle medication voice"`
	Symptoms    []string `json:"symptoms" validate:"max=30"`
	DietTags    []string `json:"diet_tags" validate:"max=30"`
	SleepLevel  *int     `json:"sleep_level" validate:"omitempty,min=1,max=5"`
	StressLevel *int     `json:"stress_level" validate:"omitempty,min=1,max=5"`
	Medications []string `json:"medications" validate:"max=30"`
	Note        string   `json:"note" validate:"max=4000"`
}
