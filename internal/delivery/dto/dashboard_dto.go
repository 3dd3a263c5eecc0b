package dto

// DoctorDashboardResponse lists the doctor's own patients (deduplicated over
// their records) and the doctor's most recent records.
type DoctorDashboardResponse struct {
	Patients      []PatientResponse `json:"patients"`
	RecentRecords []RecordResponse  `json:"recent_records"`
}

// HospitalAdminDashboardResponse is scoped to the admin's own hospital only.
type HospitalAdminDashboardResponse struct {
	Hospital       HospitalResponse  `json:"hospital"`
	PatientCount   int64             `json:"patient_count"`
	DoctorCount    int64             `json:"doctor_count"`
	RecordCount    int64             `json:"record_count"`
	RecentPatients []PatientResponse `json:"recent_patients"`
	RecentRecords  []RecordResponse  `json:"recent_records"`
}

// AdminDashboardResponse carries global counts across all hospitals.
type AdminDashboardResponse struct {
	PatientCount  int64 `json:"patient_count"`
	DoctorCount   int64 `json:"doctor_count"`
	HospitalCount int64 `json:"hospital_count"`
	RecordCount   int64 `json:"record_count"`
}

// HomeDashboardResponse is the plain-user landing view.
type HomeDashboardResponse struct {
	RecentPatients []PatientResponse `json:"recent_patients"`
	RecentRecords  []RecordResponse  `json:"recent_records"`
}
