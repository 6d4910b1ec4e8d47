// Package sample holds the built-in datasets every list starts with and
// falls back to when the benefits ledger cannot be reached.
package sample

import (
	"github.com/payzee/dashboard/internal/domain/beneficiary"
	"github.com/payzee/dashboard/internal/domain/scheme"
	"github.com/payzee/dashboard/internal/domain/transaction"
	"github.com/payzee/dashboard/internal/domain/vendor"
)

func opt(s string) *string { return &s }

// anyone is the eligibility of a scheme open to every citizen.
func anyone(tags ...string) scheme.Eligibility {
	return scheme.Eligibility{
		Gender:   opt("Any"),
		State:    opt("All"),
		District: opt("All"),
		Caste:    opt("All"),
		Tags:     tags,
	}
}

// Schemes returns a fresh copy of the sample schemes.
func Schemes() []scheme.Scheme {
	dbt := anyone("poverty", "direct-transfer")
	dbt.DOB = opt("01-01-1985")
	dbt.Income = opt("Below ₹2,50,000 per annum")

	mgnrega := anyone("rural", "employment")
	mgnrega.District = opt("Rural")

	skill := anyone("youth", "skills", "training")
	skill.DOB = opt("01-01-1990")

	ayushman := anyone("health", "insurance", "medical")
	ayushman.Income = opt("Below ₹5,00,000 per annum")

	ujjwala := anyone("women", "energy")
	ujjwala.Gender = opt("Female")

	return []scheme.Scheme{
		{
			ID: 1, Name: "Direct Benefit Transfer",
			Description: "Financial assistance directly transferred to beneficiaries' bank accounts",
			Amount:      5000, LaunchDate: "12 Jan 2022", TargetGroup: "Below Poverty Line",
			FundAllocated: "₹5,000 Cr", Status: scheme.StatusActive, Eligibility: dbt, CreatedAt: "10 Jan 2022",
		},
		{
			ID: 2, Name: "PM Kisan",
			Description: "Financial benefit to land holding farmers' families",
			Amount:      6000, LaunchDate: "24 Feb 2021", TargetGroup: "Farmers",
			FundAllocated: "₹2,500 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("farmers", "agriculture"), CreatedAt: "20 Feb 2021",
		},
		{
			ID: 3, Name: "MGNREGA",
			Description: "Employment guarantee scheme for rural households",
			Amount:      3500, LaunchDate: "05 Apr 2020", TargetGroup: "Rural Workers",
			FundAllocated: "₹3,200 Cr", Status: scheme.StatusActive, Eligibility: mgnrega, CreatedAt: "01 Apr 2020",
		},
		{
			ID: 4, Name: "Skill India",
			Description: "Training program for skill development",
			Amount:      8000, LaunchDate: "15 Jul 2021", TargetGroup: "Youth",
			FundAllocated: "₹1,800 Cr", Status: scheme.StatusInactive, Eligibility: skill, CreatedAt: "10 Jul 2021",
		},
		{
			ID: 5, Name: "Digital India",
			Description: "Initiative to promote digital literacy",
			Amount:      7500, LaunchDate: "01 Aug 2022", TargetGroup: "All Citizens",
			FundAllocated: "₹2,100 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("digital", "literacy", "technology"), CreatedAt: "25 Jul 2022",
		},
		{
			ID: 6, Name: "Startup India",
			Description: "Program to foster entrepreneurship and startups",
			Amount:      15000, LaunchDate: "16 Jan 2023", TargetGroup: "Entrepreneurs",
			FundAllocated: "₹1,500 Cr", Status: scheme.StatusInactive,
			Eligibility: anyone("startups", "business", "entrepreneurs"), CreatedAt: "10 Jan 2023",
		},
		{
			ID: 7, Name: "Ayushman Bharat",
			Description: "Health insurance scheme for low-income families",
			Amount:      5000, LaunchDate: "23 Sep 2021", TargetGroup: "Low Income Families",
			FundAllocated: "₹6,400 Cr", Status: scheme.StatusActive, Eligibility: ayushman, CreatedAt: "15 Sep 2021",
		},
		{
			ID: 8, Name: "Pradhan Mantri Awas Yojana",
			Description: "Housing assistance for the urban poor",
			Amount:      120000, LaunchDate: "25 Jun 2015", TargetGroup: "Urban Poor",
			FundAllocated: "₹4,500 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("housing", "urban", "poverty"), CreatedAt: "20 Jun 2015",
		},
		{
			ID: 9, Name: "Swachh Bharat Mission",
			Description: "Sanitation and household toilet construction",
			Amount:      12000, LaunchDate: "02 Oct 2014", TargetGroup: "All Citizens",
			FundAllocated: "₹3,800 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("sanitation", "health"), CreatedAt: "25 Sep 2014",
		},
		{
			ID: 10, Name: "Ujjwala Yojana",
			Description: "Free LPG connections for women from poor households",
			Amount:      1600, LaunchDate: "01 May 2016", TargetGroup: "Women",
			FundAllocated: "₹2,200 Cr", Status: scheme.StatusActive, Eligibility: ujjwala, CreatedAt: "25 Apr 2016",
		},
		{
			ID: 11, Name: "Atal Pension Yojana",
			Description: "Guaranteed pension for unorganized sector workers",
			Amount:      5000, LaunchDate: "09 May 2015", TargetGroup: "Unorganized Sector",
			FundAllocated: "₹1,900 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("pension", "employment"), CreatedAt: "01 May 2015",
		},
		{
			ID: 12, Name: "Pradhan Mantri Kisan Samman Nidhi",
			Description: "Income support to small and marginal farmers",
			Amount:      6000, LaunchDate: "24 Feb 2019", TargetGroup: "Small Farmers",
			FundAllocated: "₹7,500 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("farmers", "agriculture", "direct-transfer"), CreatedAt: "15 Feb 2019",
		},
		{
			ID: 13, Name: "National Health Mission",
			Description: "Accessible healthcare for rural and urban populations",
			Amount:      2500, LaunchDate: "12 Apr 2013", TargetGroup: "Rural Population",
			FundAllocated: "₹3,100 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("health", "rural"), CreatedAt: "01 Apr 2013",
		},
		{
			ID: 14, Name: "Pradhan Mantri Gram Sadak Yojana",
			Description: "All-weather road connectivity for unconnected villages",
			Amount:      0, LaunchDate: "25 Dec 2000", TargetGroup: "Rural Areas",
			FundAllocated: "₹2,800 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("rural", "infrastructure"), CreatedAt: "20 Dec 2000",
		},
		{
			ID: 15, Name: "National Rural Livelihood Mission",
			Description: "Self-help groups and livelihoods for rural women",
			Amount:      15000, LaunchDate: "03 Jun 2011", TargetGroup: "Rural Women",
			FundAllocated: "₹2,400 Cr", Status: scheme.StatusActive,
			Eligibility: anyone("rural", "women", "employment"), CreatedAt: "01 Jun 2011",
		},
	}
}

// Beneficiaries returns a fresh copy of the sample beneficiaries.
func Beneficiaries() []beneficiary.Beneficiary {
	return []beneficiary.Beneficiary{
		{ID: 1, Name: "Rajesh Kumar", State: "Uttar Pradesh", Gender: "Male", Aadhaar: "1234", Location: "Lucknow"},
		{ID: 2, Name: "Priya Singh", State: "Bihar", Gender: "Female", Aadhaar: "5678", Location: "Patna"},
		{ID: 3, Name: "Amit Patel", State: "Gujarat", Gender: "Male", Aadhaar: "9012", Location: "Ahmedabad"},
		{ID: 4, Name: "Sunita Sharma", State: "Rajasthan", Gender: "Female", Aadhaar: "3456", Location: "Jaipur"},
		{ID: 5, Name: "Vikram Mehta", State: "Maharashtra", Gender: "Male", Aadhaar: "7890", Location: "Mumbai"},
		{ID: 6, Name: "Ananya Gupta", State: "West Bengal", Gender: "Female", Aadhaar: "2345", Location: "Kolkata"},
		{ID: 7, Name: "Rahul Verma", State: "Madhya Pradesh", Gender: "Male", Aadhaar: "6789", Location: "Bhopal"},
	}
}

// Vendors returns a fresh copy of the sample vendors.
func Vendors() []vendor.Vendor {
	return []vendor.Vendor{
		{ID: "1", Name: "Agro Solutions Ltd.", MerchantID: "VEN-2023-001", Categories: []string{"Agriculture", "Rural", "Farmers"}, Location: "Delhi", Status: vendor.StatusActive},
		{ID: "2", Name: "Rural Supplies Co.", MerchantID: "VEN-2023-002", Categories: []string{"Rural", "Poverty"}, Location: "Bangalore", Status: vendor.StatusActive},
		{ID: "3", Name: "Tech Village Pvt. Ltd.", MerchantID: "VEN-2023-003", Categories: []string{"Technology", "Digital", "Literacy"}, Location: "Mumbai", Status: vendor.StatusActive},
		{ID: "4", Name: "Health First Services", MerchantID: "VEN-2023-004", Categories: []string{"Health", "Insurance", "Medical"}, Location: "Kolkata", Status: vendor.StatusInactive},
		{ID: "5", Name: "Edu Materials Inc.", MerchantID: "VEN-2023-005", Categories: []string{"Education", "Children"}, Location: "Bhopal", Status: vendor.StatusActive},
		{ID: "6", Name: "Green Farms Cooperative", MerchantID: "VEN-2023-006", Categories: []string{"Farmers", "Agriculture"}, Location: "Chandigarh", Status: vendor.StatusInactive},
		{ID: "7", Name: "Digital Solutions Hub", MerchantID: "VEN-2023-007", Categories: []string{"Digital", "Technology", "Literacy"}, Location: "Chennai", Status: vendor.StatusActive},
		{ID: "8", Name: "Women Empowerment Trust", MerchantID: "VEN-2023-008", Categories: []string{"Women", "Employment"}, Location: "Bhopal", Status: vendor.StatusActive},
		{ID: "9", Name: "Youth Skills Academy", MerchantID: "VEN-2023-009", Categories: []string{"Youth", "Skills", "Training"}, Location: "Chandigarh", Status: vendor.StatusInactive},
		{ID: "10", Name: "Direct Benefit Transfer Services", MerchantID: "VEN-2023-010", Categories: []string{"Direct-transfer", "Poverty"}, Location: "Chennai", Status: vendor.StatusActive},
		{ID: "11", Name: "Poverty Alleviation Initiative", MerchantID: "VEN-2023-011", Categories: []string{"Poverty", "Rural", "Employment"}, Location: "Bhopal", Status: vendor.StatusActive},
		{ID: "12", Name: "Startup Incubator Network", MerchantID: "VEN-2023-012", Categories: []string{"Startups", "Business", "Entrepreneurs"}, Location: "Chandigarh", Status: vendor.StatusInactive},
		{ID: "13", Name: "Children Welfare Society", MerchantID: "VEN-2023-013", Categories: []string{"Children", "Education", "Health"}, Location: "Chennai", Status: vendor.StatusActive},
	}
}

// Transactions returns a fresh copy of the sample transactions.
func Transactions() []transaction.Transaction {
	return []transaction.Transaction{
		{ID: "TXN-2023-001", SenderID: "SND-001", ReceiverID: "RCV-001", Amount: "₹5,000", Region: "North", Date: "12 Jan 2023", Status: transaction.StatusSuccess},
		{ID: "TXN-2023-002", SenderID: "SND-002", ReceiverID: "RCV-002", Amount: "₹2,500", Region: "South", Date: "15 Jan 2023", Status: transaction.StatusSuccess},
		{ID: "TXN-2023-003", SenderID: "SND-003", ReceiverID: "RCV-003", Amount: "₹3,200", Region: "East", Date: "18 Jan 2023", Status: transaction.StatusSuccess},
		{ID: "TXN-2023-004", SenderID: "SND-004", ReceiverID: "RCV-004", Amount: "₹1,800", Region: "West", Date: "20 Jan 2023", Status: transaction.StatusSuccess},
		{ID: "TXN-2023-005", SenderID: "SND-005", ReceiverID: "RCV-005", Amount: "₹2,100", Region: "Central", Date: "22 Jan 2023", Status: transaction.StatusSuccess},
		{ID: "TXN-2023-006", SenderID: "SND-006", ReceiverID: "RCV-006", Amount: "₹1,500", Region: "North", Date: "25 Jan 2023", Status: transaction.StatusSuccess},
		{ID: "TXN-2023-007", SenderID: "SND-007", ReceiverID: "RCV-007", Amount: "₹6,400", Region: "South", Date: "28 Jan 2023", Status: transaction.StatusSuccess},
	}
}
