package dto

// Read-only snapshots owned by the sibling services. Field names follow the
// platform's camelCase wire contract; date fields stay as strings because the
// payment service only passes them through.

type StudentRecord struct {
	StudentID      string `json:"studentId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Address        string `json:"address"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Grade          int    `json:"grade"`
	PhoneNumber    int    `json:"phoneNumber"`
	StudentStatus  string `json:"studentStatus"`
	TuitionClassID string `json:"tuitionClassId"`
	JoinedDate     string `json:"joinedDate"`
	UpdatedAt      string `json:"updatedAt"`
	IsDeleted      bool   `json:"isDeleted"`
}

type LocationRecord struct {
	TuitionClassID string `json:"tuitionClassId"`
	LocationName   string `json:"locationName"`
	Address        string `json:"address"`
	District       string `json:"district"`
	Province       string `json:"province"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
	IsDeleted      bool   `json:"isDeleted"`
}
