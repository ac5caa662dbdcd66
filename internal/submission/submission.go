package submission

// ContactSubmission is one row in `contact_us`.
type ContactSubmission struct {
	ID          int    `json:"submissionId"`
	Question    string `json:"question"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"fileUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// JoinSubmission is one row in `join_us`. State and district come from the
// public reference-data dropdowns; the optional file is an uploaded resume.
type JoinSubmission struct {
	ID        int    `json:"submissionId"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	State     string `json:"state"`
	District  string `json:"district"`
	Area      string `json:"area,omitempty"`
	FileURL   string `json:"fileUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// TenantDownSubmission is one row in `tenant_down_submissions`.
type TenantDownSubmission struct {
	ID          int    `json:"submissionId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	TenantURL   string `json:"tenantUrl"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
