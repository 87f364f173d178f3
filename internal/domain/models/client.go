package models

// ClientBranch is one delivery location of a client company, carrying a
// structured Philippine address.
type ClientBranch struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	BranchName  string `json:"branchName"`
	Shipper     string `json:"shipper"` // shipper/consignor contact for the company
	Street      string `json:"street"`
	Barangay    string `json:"barangay"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Region      string `json:"region"`
	Archived    bool   `json:"archived"`
}

// ClientBranchPayload is the create/update body for a branch.
type ClientBranchPayload struct {
	CompanyName string `json:"companyName" binding:"required"`
	BranchName  string `json:"branchName" binding:"required"`
	Shipper     string `json:"shipper"`
	Street      string `json:"street"`
	Barangay    string `json:"barangay"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Region      string `json:"region"`
}
