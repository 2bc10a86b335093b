package resources

import "github.com/unicsmcr/bizdash/config/role"

func field(name, label string, fieldType FieldType) Field {
	return Field{Name: name, Label: label, Type: fieldType}
}

func searchable(name, label string, fieldType FieldType) Field {
	return Field{Name: name, Label: label, Type: fieldType, Searchable: true}
}

var (
	salesFields = []Field{
		field("id", "ID", Text),
		searchable("invoiceNumber", "Invoice No.", Text),
		searchable("customerName", "Customer", Text),
		field("saleDate", "Sale Date", Date),
		field("quantity", "Quantity", Number),
		field("totalAmount", "Total Amount", Currency),
		searchable("status", "Status", Status),
	}

	purchasesFields = []Field{
		field("id", "ID", Text),
		searchable("purchaseOrderNumber", "PO No.", Text),
		searchable("vendorName", "Vendor", Text),
		field("purchaseDate", "Purchase Date", Date),
		field("quantity", "Quantity", Number),
		field("totalAmount", "Total Amount", Currency),
		searchable("status", "Status", Status),
	}

	financeReportFields = []Field{
		field("id", "ID", Text),
		searchable("reportName", "Report", Text),
		searchable("period", "Period", Text),
		field("reportDate", "Report Date", Date),
		field("totalRevenue", "Revenue", Currency),
		field("totalExpenses", "Expenses", Currency),
		searchable("preparedBy", "Prepared By", Text),
	}

	expenseFields = []Field{
		field("id", "ID", Text),
		searchable("category", "Category", Text),
		searchable("description", "Description", Text),
		field("expenseDate", "Date", Date),
		field("amount", "Amount", Currency),
		searchable("submittedBy", "Submitted By", Text),
		searchable("status", "Status", Status),
	}
)

// DefaultResources describes the collections of the business-administration backend
func DefaultResources() []Resource {
	return []Resource{
		{
			Module:       DataManagerModule,
			Name:         "tenders",
			Title:        "Tenders",
			Endpoint:     "/api/tenders",
			ItemEndpoint: "/api/tenders",
			Roles:        []role.UserRole{role.DataManager},
			Fields: []Field{
				field("id", "ID", Text),
				searchable("tenderNumber", "Tender No.", Text),
				searchable("title", "Title", Text),
				searchable("organization", "Organization", Text),
				field("submissionDate", "Submission Date", Date),
				field("estimatedValue", "Estimated Value", Currency),
				searchable("status", "Status", Status),
			},
		},
		{
			Module:       DataManagerModule,
			Name:         "bank-documents",
			Title:        "Bank Documents",
			Endpoint:     "/api/bankdocuments",
			ItemEndpoint: "/api/bankdocuments",
			Roles:        []role.UserRole{role.DataManager},
			Fields: []Field{
				field("id", "ID", Text),
				searchable("documentNumber", "Document No.", Text),
				searchable("bankName", "Bank", Text),
				searchable("documentType", "Type", Text),
				field("issueDate", "Issue Date", Date),
				field("expiryDate", "Expiry Date", Date),
				field("amount", "Amount", Currency),
				searchable("status", "Status", Status),
			},
		},
		{
			Module:       DataManagerModule,
			Name:         "finance-reports",
			Title:        "Finance Reports",
			Endpoint:     "/api/financereports",
			ItemEndpoint: "/api/financereports",
			Roles:        []role.UserRole{role.DataManager},
			Fields:       financeReportFields,
		},
		{
			Module:       DataManagerModule,
			Name:         "sales",
			Title:        "Sales",
			Endpoint:     "/api/sales",
			ItemEndpoint: "/api/sales",
			Roles:        []role.UserRole{role.DataManager},
			Fields:       salesFields,
		},
		{
			Module:       DataManagerModule,
			Name:         "purchases",
			Title:        "Purchases",
			Endpoint:     "/api/purchases",
			ItemEndpoint: "/api/purchases",
			Roles:        []role.UserRole{role.DataManager},
			Fields:       purchasesFields,
		},
		{
			Module:       FinanceModule,
			Name:         "sales",
			Title:        "Sales",
			Endpoint:     "/api/sales",
			ItemEndpoint: "/api/sales",
			Roles:        []role.UserRole{role.Finance},
			Fields:       salesFields,
		},
		{
			Module:       FinanceModule,
			Name:         "purchases",
			Title:        "Purchases",
			Endpoint:     "/api/purchases",
			ItemEndpoint: "/api/purchases",
			Roles:        []role.UserRole{role.Finance},
			Fields:       purchasesFields,
		},
		{
			Module:       FinanceModule,
			Name:         "finance-reports",
			Title:        "Finance Reports",
			Endpoint:     "/api/financereports",
			ItemEndpoint: "/api/financereports",
			Roles:        []role.UserRole{role.Finance},
			Fields:       financeReportFields,
		},
		{
			Module:       FinanceModule,
			Name:         "expenses",
			Title:        "Expenses",
			Endpoint:     "/api/expenses",
			ItemEndpoint: "/api/expenses",
			Roles:        []role.UserRole{role.Finance},
			Fields:       expenseFields,
		},
		{
			Module:       HRModule,
			Name:         "employees",
			Title:        "Employees",
			Endpoint:     "/api/employees",
			ItemEndpoint: "/api/employees",
			Roles:        []role.UserRole{role.HR},
			Fields: []Field{
				field("id", "ID", Text),
				searchable("employeeId", "Employee ID", Text),
				searchable("name", "Name", Text),
				searchable("email", "Email", Email),
				searchable("department", "Department", Text),
				searchable("designation", "Designation", Text),
				field("joiningDate", "Joining Date", Date),
				field("salary", "Salary", Currency),
				searchable("status", "Status", Status),
			},
		},
		{
			Module:   HRModule,
			Name:     "attendance",
			Title:    "Attendance",
			Endpoint: "/api/attendance/all",
			Roles:    []role.UserRole{role.HR},
			Fields: []Field{
				field("id", "ID", Text),
				searchable("employeeId", "Employee ID", Text),
				searchable("employeeName", "Employee", Text),
				field("date", "Date", Date),
				field("checkInTime", "Check In", DateTime),
				field("checkOutTime", "Check Out", DateTime),
				searchable("status", "Status", Status),
			},
		},
		{
			Module:       HRModule,
			Name:         "expenses",
			Title:        "Expenses",
			Endpoint:     "/api/expenses",
			ItemEndpoint: "/api/expenses",
			Roles:        []role.UserRole{role.HR},
			Fields:       expenseFields,
		},
		{
			Module:   StoreModule,
			Name:     "stationary",
			Title:    "Stationary",
			Endpoint: "/store/stationary/all",
			Roles:    []role.UserRole{role.Store},
			Fields: []Field{
				field("id", "ID", Text),
				searchable("itemName", "Item", Text),
				searchable("category", "Category", Text),
				field("quantity", "Quantity", Number),
				field("unitPrice", "Unit Price", Currency),
				field("purchaseDate", "Purchase Date", Date),
				searchable("supplier", "Supplier", Text),
			},
		},
		{
			Module:   StoreModule,
			Name:     "lab",
			Title:    "Lab Equipment",
			Endpoint: "/store/lab/all",
			Roles:    []role.UserRole{role.Store},
			Fields: []Field{
				field("id", "ID", Text),
				searchable("equipmentName", "Equipment", Text),
				searchable("labName", "Lab", Text),
				field("quantity", "Quantity", Number),
				searchable("condition", "Condition", Status),
				field("purchaseDate", "Purchase Date", Date),
				field("lastServiceDate", "Last Service", Date),
			},
		},
		{
			Module:   StoreModule,
			Name:     "assets",
			Title:    "Assets",
			Endpoint: "/store/assets/all",
			Roles:    []role.UserRole{role.Store},
			Fields: []Field{
				field("id", "ID", Text),
				searchable("assetTag", "Asset Tag", Text),
				searchable("assetName", "Asset", Text),
				searchable("assignedTo", "Assigned To", Text),
				searchable("location", "Location", Text),
				field("purchaseDate", "Purchase Date", Date),
				field("value", "Value", Currency),
				searchable("status", "Status", Status),
			},
		},
		{
			Module:         EmployeeModule,
			Name:           "my-attendance",
			Title:          "My Attendance",
			Endpoint:       "/api/attendance/employee/" + employeeIDPlaceholder,
			EmployeeScoped: true,
			Fields: []Field{
				field("date", "Date", Date),
				field("checkInTime", "Check In", DateTime),
				field("checkOutTime", "Check Out", DateTime),
				field("hoursWorked", "Hours", Number),
				searchable("status", "Status", Status),
			},
		},
	}
}

// NewDefaultCatalog creates the catalog of DefaultResources
func NewDefaultCatalog() (*Catalog, error) {
	return NewCatalog(DefaultResources()...)
}
