package preset

// Built-in entity types.
const (
	Contact             EntityType = "CONTACT"
	Account             EntityType = "ACCOUNT"
	Lead                EntityType = "LEAD"
	Opportunity         EntityType = "OPPORTUNITY"
	Activity            EntityType = "ACTIVITY"
	Campaign            EntityType = "CAMPAIGN"
	Consent             EntityType = "CONSENT"
	Quote               EntityType = "QUOTE"
	SalesOrder          EntityType = "SALES_ORDER"
	PriceList           EntityType = "PRICE_LIST"
	Vendor              EntityType = "VENDOR"
	PurchaseOrder       EntityType = "PURCHASE_ORDER"
	RebateAgreement     EntityType = "REBATE_AGREEMENT"
	PurchaseRequisition EntityType = "PURCHASE_REQUISITION"
	SupplierContract    EntityType = "SUPPLIER_CONTRACT"
	Product             EntityType = "PRODUCT"
	Warehouse           EntityType = "WAREHOUSE"
	StockMovement       EntityType = "STOCK_MOVEMENT"
	StockCount          EntityType = "STOCK_COUNT"
	Batch               EntityType = "BATCH"
	Invoice             EntityType = "INVOICE"
	Payment             EntityType = "PAYMENT"
	Expense             EntityType = "EXPENSE"
	Budget              EntityType = "BUDGET"
	JournalEntry        EntityType = "JOURNAL_ENTRY"
	BankAccount         EntityType = "BANK_ACCOUNT"
	Employee            EntityType = "EMPLOYEE"
	LeaveRequest        EntityType = "LEAVE_REQUEST"
	Timesheet           EntityType = "TIMESHEET"
	Position            EntityType = "POSITION"
	BOM                 EntityType = "BOM"
	WorkOrder           EntityType = "WORK_ORDER"
	Machine             EntityType = "MACHINE"
	QualityCheck        EntityType = "QUALITY_CHECK"
	Project             EntityType = "PROJECT"
	Milestone           EntityType = "MILESTONE"
	ServiceTicket       EntityType = "SERVICE_TICKET"
	Policy              EntityType = "POLICY"
	Risk                EntityType = "RISK"
	AuditEngagement     EntityType = "AUDIT_ENGAGEMENT"
	AuditFinding        EntityType = "AUDIT_FINDING"
	ClientDocument      EntityType = "CLIENT_DOCUMENT"
	CollectionRoute     EntityType = "COLLECTION_ROUTE"
	WastePickup         EntityType = "WASTE_PICKUP"
	RecyclingFacility   EntityType = "RECYCLING_FACILITY"
	Vehicle             EntityType = "VEHICLE"
)

var catalog = []EntityPreset{
	// CRM
	{
		Key:           Contact,
		Title:         "Contact",
		TitlePlural:   "Contacts",
		Description:   "People at customer and prospect accounts",
		SmartCode:     "HERA.CRM.CUSTOMER.ENTITY.CONTACT.v1",
		Module:        ModuleCRM,
		DefaultFields: []string{"email", "phone", "company", "title", "owner", "source", "notes"},
		KPIMetrics:    []string{"total_contacts", "new_this_month", "engagement_rate"},
		BusinessRules: BusinessRules{DuplicateDetection: true, AuditTrail: true},
		UI:            UI{Icon: "Users", PrimaryColor: "#6366f1", AccentColor: "#4f46e5"},
	},
	{
		Key:           Account,
		Title:         "Account",
		TitlePlural:   "Accounts",
		Description:   "Customer organizations with ownership and revenue",
		SmartCode:     "HERA.CRM.CUSTOMER.ENTITY.ACCOUNT.v1",
		Module:        ModuleCRM,
		DefaultFields: []string{"industry", "website", "revenue", "employees", "owner", "phone"},
		KPIMetrics:    []string{"total_accounts", "total_revenue", "avg_deal_size"},
		BusinessRules: BusinessRules{DuplicateDetection: true, CreditLimitCheck: true, AuditTrail: true},
		UI:            UI{Icon: "Building2", PrimaryColor: "#0ea5e9", AccentColor: "#0284c7"},
	},
	{
		Key:           Lead,
		Title:         "Lead",
		TitlePlural:   "Leads",
		Description:   "Unqualified prospects moving through qualification",
		SmartCode:     "HERA.CRM.PIPELINE.ENTITY.LEAD.v1",
		Module:        ModuleCRM,
		DefaultFields: []string{"email", "phone", "company", "source", "score", "owner", "status"},
		KPIMetrics:    []string{"total_leads", "conversion_rate", "avg_score"},
		BusinessRules: BusinessRules{StatusWorkflow: true, DuplicateDetection: true},
		UI:            UI{Icon: "Target", PrimaryColor: "#f59e0b", AccentColor: "#d97706"},
	},
	{
		Key:           Opportunity,
		Title:         "Opportunity",
		TitlePlural:   "Opportunities",
		Description:   "Qualified deals with stage, value and close date",
		SmartCode:     "HERA.CRM.PIPELINE.ENTITY.OPPORTUNITY.v1",
		Module:        ModuleCRM,
		DefaultFields: []string{"account", "value", "stage", "probability", "close_date", "owner"},
		KPIMetrics:    []string{"pipeline_value", "win_rate", "avg_cycle_days"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, MultiCurrency: true},
		UI:            UI{Icon: "TrendingUp", PrimaryColor: "#10b981", AccentColor: "#059669"},
	},
	{
		Key:           Activity,
		Title:         "Activity",
		TitlePlural:   "Activities",
		Description:   "Calls, meetings and tasks logged against records",
		SmartCode:     "HERA.CRM.ENGAGEMENT.ENTITY.ACTIVITY.v1",
		Module:        ModuleCRM,
		DefaultFields: []string{"subject", "type", "due_date", "owner", "related_to", "notes"},
		KPIMetrics:    []string{"activities_this_week", "overdue_tasks"},
		BusinessRules: BusinessRules{StatusWorkflow: true},
		UI:            UI{Icon: "CalendarCheck", PrimaryColor: "#8b5cf6", AccentColor: "#7c3aed"},
	},
	{
		Key:           Campaign,
		Title:         "Campaign",
		TitlePlural:   "Campaigns",
		Description:   "Marketing campaigns with budget and response tracking",
		SmartCode:     "HERA.CRM.MARKETING.ENTITY.CAMPAIGN.v1",
		Module:        ModuleCRM,
		DefaultFields: []string{"channel", "budget", "start_date", "end_date", "owner", "status"},
		KPIMetrics:    []string{"active_campaigns", "cost_per_lead", "roi"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true},
		UI:            UI{Icon: "Megaphone", PrimaryColor: "#ec4899", AccentColor: "#db2777"},
	},
	{
		Key:           Consent,
		Title:         "Consent Record",
		TitlePlural:   "Consent Records",
		Description:   "GDPR consent captured per contact and purpose",
		SmartCode:     "HERA.CRM.PRIVACY.ENTITY.CONSENT.v1",
		Module:        ModuleCRM,
		DefaultFields: []string{"email", "purpose", "consent_given", "consent_date", "expiry_date", "source"},
		KPIMetrics:    []string{"active_consents", "withdrawals_this_month"},
		BusinessRules: BusinessRules{GDPRCompliance: true, AuditTrail: true},
		UI:            UI{Icon: "ShieldCheck", PrimaryColor: "#14b8a6", AccentColor: "#0d9488"},
	},

	// Sales
	{
		Key:           Quote,
		Title:         "Quote",
		TitlePlural:   "Quotes",
		Description:   "Priced offers sent to customers",
		SmartCode:     "HERA.SALES.QUOTING.ENTITY.QUOTE.v1",
		Module:        ModuleSales,
		DefaultFields: []string{"account", "amount", "valid_until", "owner", "status", "discount"},
		KPIMetrics:    []string{"open_quotes", "quote_to_order_rate"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, MultiCurrency: true},
		UI:            UI{Icon: "FileText", PrimaryColor: "#3b82f6", AccentColor: "#2563eb"},
	},
	{
		Key:           SalesOrder,
		Title:         "Sales Order",
		TitlePlural:   "Sales Orders",
		Description:   "Confirmed customer orders awaiting fulfilment",
		SmartCode:     "HERA.SALES.ORDER.ENTITY.SALES_ORDER.v1",
		Module:        ModuleSales,
		DefaultFields: []string{"account", "order_date", "amount", "delivery_date", "status", "owner"},
		KPIMetrics:    []string{"orders_this_month", "backlog_value"},
		BusinessRules: BusinessRules{StatusWorkflow: true, CreditLimitCheck: true, MultiCurrency: true},
		UI:            UI{Icon: "ShoppingCart", PrimaryColor: "#2563eb", AccentColor: "#1d4ed8"},
	},
	{
		Key:           PriceList,
		Title:         "Price List",
		TitlePlural:   "Price Lists",
		Description:   "Customer-group specific product pricing",
		SmartCode:     "HERA.SALES.PRICING.ENTITY.PRICE_LIST.v1",
		Module:        ModuleSales,
		DefaultFields: []string{"currency", "valid_from", "valid_until", "customer_group", "status"},
		KPIMetrics:    []string{"active_price_lists"},
		BusinessRules: BusinessRules{RequiresApproval: true, MultiCurrency: true},
		UI:            UI{Icon: "Tags", PrimaryColor: "#0891b2", AccentColor: "#0e7490"},
	},

	// Procurement
	{
		Key:           Vendor,
		Title:         "Vendor",
		TitlePlural:   "Vendors",
		Description:   "Suppliers with payment terms and ratings",
		SmartCode:     "HERA.PROCUREMENT.SUPPLIER.ENTITY.VENDOR.v1",
		Module:        ModuleProcurement,
		DefaultFields: []string{"company", "email", "phone", "payment_terms", "rating", "country"},
		KPIMetrics:    []string{"active_vendors", "avg_rating", "on_time_delivery"},
		BusinessRules: BusinessRules{DuplicateDetection: true, RequiresApproval: true},
		UI:            UI{Icon: "Truck", PrimaryColor: "#64748b", AccentColor: "#475569"},
	},
	{
		Key:           PurchaseOrder,
		Title:         "Purchase Order",
		TitlePlural:   "Purchase Orders",
		Description:   "Orders placed with vendors",
		SmartCode:     "HERA.PROCUREMENT.PURCHASING.ENTITY.PURCHASE_ORDER.v1",
		Module:        ModuleProcurement,
		DefaultFields: []string{"vendor", "order_date", "amount", "delivery_date", "status", "buyer"},
		KPIMetrics:    []string{"open_pos", "spend_this_month"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, MultiCurrency: true},
		UI:            UI{Icon: "ClipboardList", PrimaryColor: "#0f766e", AccentColor: "#115e59"},
	},
	{
		Key:           RebateAgreement,
		Title:         "Rebate Agreement",
		TitlePlural:   "Rebate Agreements",
		Description:   "Volume rebate contracts negotiated with vendors",
		SmartCode:     "HERA.PROCUREMENT.REBATE.ENTITY.AGREEMENT.v1",
		Module:        ModuleProcurement,
		DefaultFields: []string{"vendor", "rebate_rate", "threshold", "start_date", "end_date", "status"},
		KPIMetrics:    []string{"accrued_rebates", "agreements_expiring"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, AuditTrail: true},
		UI:            UI{Icon: "Percent", PrimaryColor: "#7c3aed", AccentColor: "#6d28d9"},
	},
	{
		Key:           PurchaseRequisition,
		Title:         "Purchase Requisition",
		TitlePlural:   "Purchase Requisitions",
		Description:   "Internal requests to buy goods or services",
		SmartCode:     "HERA.PROCUREMENT.PURCHASING.ENTITY.REQUISITION.v1",
		Module:        ModuleProcurement,
		DefaultFields: []string{"requester", "department", "amount", "needed_by", "status", "justification"},
		KPIMetrics:    []string{"pending_requisitions", "avg_approval_days"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true},
		UI:            UI{Icon: "ClipboardCheck", PrimaryColor: "#0d9488", AccentColor: "#0f766e"},
	},
	{
		Key:           SupplierContract,
		Title:         "Supplier Contract",
		TitlePlural:   "Supplier Contracts",
		Description:   "Framework agreements with suppliers",
		SmartCode:     "HERA.PROCUREMENT.SUPPLIER.ENTITY.CONTRACT.v1",
		Module:        ModuleProcurement,
		DefaultFields: []string{"vendor", "value", "start_date", "end_date", "owner", "status"},
		KPIMetrics:    []string{"active_contracts", "contracts_expiring"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, AuditTrail: true},
		UI:            UI{Icon: "FileSignature", PrimaryColor: "#4338ca", AccentColor: "#3730a3"},
	},

	// Inventory
	{
		Key:           Product,
		Title:         "Product",
		TitlePlural:   "Products",
		Description:   "Sellable and stockable items",
		SmartCode:     "HERA.INVENTORY.CATALOG.ENTITY.PRODUCT.v1",
		Module:        ModuleInventory,
		DefaultFields: []string{"sku", "price", "category", "unit", "stock_level", "reorder_point"},
		KPIMetrics:    []string{"total_skus", "low_stock_items", "inventory_value"},
		BusinessRules: BusinessRules{StockTracking: true, DuplicateDetection: true},
		UI:            UI{Icon: "Package", PrimaryColor: "#f97316", AccentColor: "#ea580c"},
	},
	{
		Key:           Warehouse,
		Title:         "Warehouse",
		TitlePlural:   "Warehouses",
		Description:   "Storage locations and their capacity",
		SmartCode:     "HERA.INVENTORY.LOCATION.ENTITY.WAREHOUSE.v1",
		Module:        ModuleInventory,
		DefaultFields: []string{"code", "address", "capacity", "manager", "phone"},
		KPIMetrics:    []string{"utilization", "locations"},
		BusinessRules: BusinessRules{StockTracking: true},
		UI:            UI{Icon: "Warehouse", PrimaryColor: "#a16207", AccentColor: "#854d0e"},
	},
	{
		Key:           StockMovement,
		Title:         "Stock Movement",
		TitlePlural:   "Stock Movements",
		Description:   "Receipts, issues and transfers of stock",
		SmartCode:     "HERA.INVENTORY.MOVEMENT.ENTITY.STOCK_MOVEMENT.v1",
		Module:        ModuleInventory,
		DefaultFields: []string{"sku", "quantity", "from_location", "to_location", "movement_date", "reason"},
		KPIMetrics:    []string{"movements_today", "adjustments_value"},
		BusinessRules: BusinessRules{StockTracking: true, AuditTrail: true},
		UI:            UI{Icon: "ArrowLeftRight", PrimaryColor: "#ca8a04", AccentColor: "#a16207"},
	},
	{
		Key:           StockCount,
		Title:         "Stock Count",
		TitlePlural:   "Stock Counts",
		Description:   "Cycle and full physical inventory counts",
		SmartCode:     "HERA.INVENTORY.COUNT.ENTITY.STOCK_COUNT.v1",
		Module:        ModuleInventory,
		DefaultFields: []string{"warehouse", "count_date", "counted_by", "variance", "status"},
		KPIMetrics:    []string{"counts_open", "variance_value"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, StockTracking: true},
		UI:            UI{Icon: "ListChecks", PrimaryColor: "#b45309", AccentColor: "#92400e"},
	},
	{
		Key:           Batch,
		Title:         "Batch",
		TitlePlural:   "Batches",
		Description:   "Lot-tracked production or receipt batches",
		SmartCode:     "HERA.INVENTORY.TRACEABILITY.ENTITY.BATCH.v1",
		Module:        ModuleInventory,
		DefaultFields: []string{"sku", "batch_number", "quantity", "manufacture_date", "expiry_date"},
		KPIMetrics:    []string{"batches_expiring"},
		BusinessRules: BusinessRules{StockTracking: true, AuditTrail: true},
		UI:            UI{Icon: "Layers", PrimaryColor: "#65a30d", AccentColor: "#4d7c0f"},
	},

	// Finance
	{
		Key:           Invoice,
		Title:         "Invoice",
		TitlePlural:   "Invoices",
		Description:   "Customer invoices and their payment status",
		SmartCode:     "HERA.FINANCE.AR.ENTITY.INVOICE.v1",
		Module:        ModuleFinance,
		DefaultFields: []string{"account", "invoice_date", "due_date", "amount", "tax", "status"},
		KPIMetrics:    []string{"outstanding_amount", "overdue_invoices", "dso"},
		BusinessRules: BusinessRules{StatusWorkflow: true, AuditTrail: true, MultiCurrency: true},
		UI:            UI{Icon: "Receipt", PrimaryColor: "#16a34a", AccentColor: "#15803d"},
	},
	{
		Key:           Payment,
		Title:         "Payment",
		TitlePlural:   "Payments",
		Description:   "Incoming and outgoing payments",
		SmartCode:     "HERA.FINANCE.CASH.ENTITY.PAYMENT.v1",
		Module:        ModuleFinance,
		DefaultFields: []string{"amount", "payment_date", "method", "reference", "account"},
		KPIMetrics:    []string{"collected_this_month", "unapplied_cash"},
		BusinessRules: BusinessRules{RequiresApproval: true, AuditTrail: true, MultiCurrency: true},
		UI:            UI{Icon: "CreditCard", PrimaryColor: "#059669", AccentColor: "#047857"},
	},
	{
		Key:           Expense,
		Title:         "Expense",
		TitlePlural:   "Expenses",
		Description:   "Employee expense claims",
		SmartCode:     "HERA.FINANCE.AP.ENTITY.EXPENSE.v1",
		Module:        ModuleFinance,
		DefaultFields: []string{"employee", "amount", "expense_date", "category", "receipt_url", "status"},
		KPIMetrics:    []string{"claims_pending", "spend_by_category"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true},
		UI:            UI{Icon: "Wallet", PrimaryColor: "#dc2626", AccentColor: "#b91c1c"},
	},
	{
		Key:           Budget,
		Title:         "Budget",
		TitlePlural:   "Budgets",
		Description:   "Cost-center budgets per fiscal period",
		SmartCode:     "HERA.FINANCE.PLANNING.ENTITY.BUDGET.v1",
		Module:        ModuleFinance,
		DefaultFields: []string{"cost_center", "fiscal_year", "amount", "spent", "owner"},
		KPIMetrics:    []string{"utilization", "variance"},
		BusinessRules: BusinessRules{RequiresApproval: true},
		UI:            UI{Icon: "PiggyBank", PrimaryColor: "#9333ea", AccentColor: "#7e22ce"},
	},
	{
		Key:           JournalEntry,
		Title:         "Journal Entry",
		TitlePlural:   "Journal Entries",
		Description:   "Manual general ledger postings",
		SmartCode:     "HERA.FINANCE.GL.ENTITY.JOURNAL_ENTRY.v1",
		Module:        ModuleFinance,
		DefaultFields: []string{"posting_date", "reference", "debit", "credit", "description", "status"},
		KPIMetrics:    []string{"unposted_entries"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, AuditTrail: true},
		UI:            UI{Icon: "BookOpen", PrimaryColor: "#1e40af", AccentColor: "#1e3a8a"},
	},
	{
		Key:           BankAccount,
		Title:         "Bank Account",
		TitlePlural:   "Bank Accounts",
		Description:   "Company bank accounts and balances",
		SmartCode:     "HERA.FINANCE.TREASURY.ENTITY.BANK_ACCOUNT.v1",
		Module:        ModuleFinance,
		DefaultFields: []string{"bank_name", "iban", "currency", "balance", "owner"},
		KPIMetrics:    []string{"cash_position"},
		BusinessRules: BusinessRules{AuditTrail: true, MultiCurrency: true},
		UI:            UI{Icon: "Landmark", PrimaryColor: "#0369a1", AccentColor: "#075985"},
	},

	// HR
	{
		Key:           Employee,
		Title:         "Employee",
		TitlePlural:   "Employees",
		Description:   "Staff records with department and role",
		SmartCode:     "HERA.HR.PEOPLE.ENTITY.EMPLOYEE.v1",
		Module:        ModuleHR,
		DefaultFields: []string{"email", "phone", "department", "position", "hire_date", "manager"},
		KPIMetrics:    []string{"headcount", "turnover_rate"},
		BusinessRules: BusinessRules{GDPRCompliance: true, AuditTrail: true},
		UI:            UI{Icon: "UserCircle", PrimaryColor: "#2563eb", AccentColor: "#1d4ed8"},
	},
	{
		Key:           LeaveRequest,
		Title:         "Leave Request",
		TitlePlural:   "Leave Requests",
		Description:   "Vacation and absence requests",
		SmartCode:     "HERA.HR.TIME.ENTITY.LEAVE_REQUEST.v1",
		Module:        ModuleHR,
		DefaultFields: []string{"employee", "leave_type", "start_date", "end_date", "days", "status"},
		KPIMetrics:    []string{"pending_requests", "days_taken"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true},
		UI:            UI{Icon: "Plane", PrimaryColor: "#0284c7", AccentColor: "#0369a1"},
	},
	{
		Key:           Timesheet,
		Title:         "Timesheet",
		TitlePlural:   "Timesheets",
		Description:   "Weekly hours booked per project",
		SmartCode:     "HERA.HR.TIME.ENTITY.TIMESHEET.v1",
		Module:        ModuleHR,
		DefaultFields: []string{"employee", "week_start", "hours", "project", "status"},
		KPIMetrics:    []string{"hours_this_week", "utilization"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true},
		UI:            UI{Icon: "Clock", PrimaryColor: "#7c3aed", AccentColor: "#6d28d9"},
	},
	{
		Key:           Position,
		Title:         "Position",
		TitlePlural:   "Positions",
		Description:   "Budgeted roles in the organization chart",
		SmartCode:     "HERA.HR.ORG.ENTITY.POSITION.v1",
		Module:        ModuleHR,
		DefaultFields: []string{"department", "grade", "salary_band", "headcount", "status"},
		KPIMetrics:    []string{"open_positions"},
		BusinessRules: BusinessRules{RequiresApproval: true},
		UI:            UI{Icon: "Briefcase", PrimaryColor: "#475569", AccentColor: "#334155"},
	},

	// Manufacturing
	{
		Key:           BOM,
		Title:         "Bill of Materials",
		TitlePlural:   "Bills of Materials",
		Description:   "Component structures for manufactured items",
		SmartCode:     "HERA.MANUFACTURING.ENGINEERING.ENTITY.BOM.v1",
		Module:        ModuleManufacturing,
		DefaultFields: []string{"sku", "version", "quantity", "unit", "cost", "status"},
		KPIMetrics:    []string{"active_boms", "avg_components"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, AuditTrail: true},
		UI:            UI{Icon: "Network", PrimaryColor: "#57534e", AccentColor: "#44403c"},
	},
	{
		Key:           WorkOrder,
		Title:         "Work Order",
		TitlePlural:   "Work Orders",
		Description:   "Production orders on the shop floor",
		SmartCode:     "HERA.MANUFACTURING.PRODUCTION.ENTITY.WORK_ORDER.v1",
		Module:        ModuleManufacturing,
		DefaultFields: []string{"sku", "quantity", "start_date", "due_date", "work_center", "status"},
		KPIMetrics:    []string{"orders_in_progress", "on_time_rate"},
		BusinessRules: BusinessRules{StatusWorkflow: true, StockTracking: true},
		UI:            UI{Icon: "Factory", PrimaryColor: "#b91c1c", AccentColor: "#991b1b"},
	},
	{
		Key:           Machine,
		Title:         "Machine",
		TitlePlural:   "Machines",
		Description:   "Production equipment and maintenance state",
		SmartCode:     "HERA.MANUFACTURING.ASSET.ENTITY.MACHINE.v1",
		Module:        ModuleManufacturing,
		DefaultFields: []string{"serial_number", "model", "location", "last_service_date", "status"},
		KPIMetrics:    []string{"oee", "downtime_hours"},
		BusinessRules: BusinessRules{StatusWorkflow: true},
		UI:            UI{Icon: "Cog", PrimaryColor: "#525252", AccentColor: "#404040"},
	},
	{
		Key:           QualityCheck,
		Title:         "Quality Check",
		TitlePlural:   "Quality Checks",
		Description:   "Inspection results for batches and work orders",
		SmartCode:     "HERA.MANUFACTURING.QUALITY.ENTITY.INSPECTION.v1",
		Module:        ModuleManufacturing,
		DefaultFields: []string{"batch_number", "inspector", "inspection_date", "result", "defects"},
		KPIMetrics:    []string{"pass_rate", "defects_per_batch"},
		BusinessRules: BusinessRules{StatusWorkflow: true, AuditTrail: true},
		UI:            UI{Icon: "BadgeCheck", PrimaryColor: "#15803d", AccentColor: "#166534"},
	},

	// Projects
	{
		Key:           Project,
		Title:         "Project",
		TitlePlural:   "Projects",
		Description:   "Customer and internal projects",
		SmartCode:     "HERA.PROJECTS.DELIVERY.ENTITY.PROJECT.v1",
		Module:        ModuleProjects,
		DefaultFields: []string{"account", "budget", "start_date", "end_date", "owner", "status"},
		KPIMetrics:    []string{"active_projects", "budget_burn"},
		BusinessRules: BusinessRules{StatusWorkflow: true, MultiCurrency: true},
		UI:            UI{Icon: "FolderKanban", PrimaryColor: "#0ea5e9", AccentColor: "#0284c7"},
	},
	{
		Key:           Milestone,
		Title:         "Milestone",
		TitlePlural:   "Milestones",
		Description:   "Billable project milestones",
		SmartCode:     "HERA.PROJECTS.DELIVERY.ENTITY.MILESTONE.v1",
		Module:        ModuleProjects,
		DefaultFields: []string{"project", "due_date", "amount", "owner", "status"},
		KPIMetrics:    []string{"milestones_due"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true},
		UI:            UI{Icon: "Flag", PrimaryColor: "#f43f5e", AccentColor: "#e11d48"},
	},

	// Service
	{
		Key:           ServiceTicket,
		Title:         "Service Ticket",
		TitlePlural:   "Service Tickets",
		Description:   "Customer support and field service requests",
		SmartCode:     "HERA.SERVICE.SUPPORT.ENTITY.TICKET.v1",
		Module:        ModuleService,
		DefaultFields: []string{"account", "subject", "priority", "assignee", "due_date", "status"},
		KPIMetrics:    []string{"open_tickets", "avg_resolution_hours", "sla_breaches"},
		BusinessRules: BusinessRules{StatusWorkflow: true},
		UI:            UI{Icon: "LifeBuoy", PrimaryColor: "#e11d48", AccentColor: "#be123c"},
	},

	// Compliance
	{
		Key:           Policy,
		Title:         "Policy",
		TitlePlural:   "Policies",
		Description:   "Internal policies with review cycles",
		SmartCode:     "HERA.COMPLIANCE.GOVERNANCE.ENTITY.POLICY.v1",
		Module:        ModuleCompliance,
		DefaultFields: []string{"owner", "version", "effective_date", "review_date", "status"},
		KPIMetrics:    []string{"policies_due_review"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, AuditTrail: true},
		UI:            UI{Icon: "Scale", PrimaryColor: "#334155", AccentColor: "#1e293b"},
	},
	{
		Key:           Risk,
		Title:         "Risk",
		TitlePlural:   "Risks",
		Description:   "Risk register entries with likelihood and impact",
		SmartCode:     "HERA.COMPLIANCE.RISK.ENTITY.REGISTER.v1",
		Module:        ModuleCompliance,
		DefaultFields: []string{"owner", "likelihood", "impact", "mitigation", "review_date", "status"},
		KPIMetrics:    []string{"high_risks", "overdue_mitigations"},
		BusinessRules: BusinessRules{StatusWorkflow: true, AuditTrail: true},
		UI:            UI{Icon: "AlertTriangle", PrimaryColor: "#ea580c", AccentColor: "#c2410c"},
	},

	// Audit
	{
		Key:           AuditEngagement,
		Title:         "Audit Engagement",
		TitlePlural:   "Audit Engagements",
		Description:   "Audit engagements per client and fiscal year",
		SmartCode:     "HERA.AUDIT.ENGAGEMENT.ENTITY.CLIENT.v1",
		Module:        ModuleAudit,
		DefaultFields: []string{"company", "fiscal_year", "partner", "start_date", "fee", "status"},
		KPIMetrics:    []string{"active_engagements", "fee_realization"},
		BusinessRules: BusinessRules{StatusWorkflow: true, RequiresApproval: true, AuditTrail: true},
		UI:            UI{Icon: "Briefcase", PrimaryColor: "#1d4ed8", AccentColor: "#1e40af"},
	},
	{
		Key:           AuditFinding,
		Title:         "Audit Finding",
		TitlePlural:   "Audit Findings",
		Description:   "Issues raised during fieldwork",
		SmartCode:     "HERA.AUDIT.FIELDWORK.ENTITY.FINDING.v1",
		Module:        ModuleAudit,
		DefaultFields: []string{"engagement", "severity", "area", "owner", "due_date", "status"},
		KPIMetrics:    []string{"open_findings", "high_severity"},
		BusinessRules: BusinessRules{StatusWorkflow: true, AuditTrail: true},
		UI:            UI{Icon: "SearchCheck", PrimaryColor: "#b91c1c", AccentColor: "#991b1b"},
	},
	{
		Key:           ClientDocument,
		Title:         "Client Document",
		TitlePlural:   "Client Documents",
		Description:   "Documents requested from and provided by audit clients",
		SmartCode:     "HERA.AUDIT.DOCUMENTS.ENTITY.REQUEST.v1",
		Module:        ModuleAudit,
		DefaultFields: []string{"engagement", "document_type", "requested_date", "due_date", "file_url", "status"},
		KPIMetrics:    []string{"documents_outstanding"},
		BusinessRules: BusinessRules{StatusWorkflow: true, GDPRCompliance: true},
		UI:            UI{Icon: "FolderOpen", PrimaryColor: "#0f766e", AccentColor: "#115e59"},
	},

	// Waste management
	{
		Key:           CollectionRoute,
		Title:         "Collection Route",
		TitlePlural:   "Collection Routes",
		Description:   "Scheduled waste collection routes",
		SmartCode:     "HERA.WASTE_MANAGEMENT.LOGISTICS.ENTITY.ROUTE.v1",
		Module:        ModuleWasteManagement,
		DefaultFields: []string{"ward", "vehicle", "driver", "schedule", "distance", "status"},
		KPIMetrics:    []string{"routes_completed", "avg_route_km"},
		BusinessRules: BusinessRules{StatusWorkflow: true},
		UI:            UI{Icon: "Route", PrimaryColor: "#16a34a", AccentColor: "#15803d"},
	},
	{
		Key:           WastePickup,
		Title:         "Waste Pickup",
		TitlePlural:   "Waste Pickups",
		Description:   "Individual pickups with weight and waste category",
		SmartCode:     "HERA.WASTE_MANAGEMENT.OPERATIONS.ENTITY.PICKUP.v1",
		Module:        ModuleWasteManagement,
		DefaultFields: []string{"customer", "pickup_date", "waste_type", "weight", "route", "status"},
		KPIMetrics:    []string{"tons_collected", "segregation_rate"},
		BusinessRules: BusinessRules{StatusWorkflow: true, AuditTrail: true},
		UI:            UI{Icon: "Trash2", PrimaryColor: "#65a30d", AccentColor: "#4d7c0f"},
	},
	{
		Key:           RecyclingFacility,
		Title:         "Recycling Facility",
		TitlePlural:   "Recycling Facilities",
		Description:   "Material recovery and processing facilities",
		SmartCode:     "HERA.WASTE_MANAGEMENT.FACILITY.ENTITY.RECYCLING.v1",
		Module:        ModuleWasteManagement,
		DefaultFields: []string{"address", "capacity", "material_types", "manager", "phone"},
		KPIMetrics:    []string{"throughput", "recovery_rate"},
		BusinessRules: BusinessRules{AuditTrail: true},
		UI:            UI{Icon: "Recycle", PrimaryColor: "#059669", AccentColor: "#047857"},
	},
	{
		Key:           Vehicle,
		Title:         "Vehicle",
		TitlePlural:   "Vehicles",
		Description:   "Collection fleet with capacity and service dates",
		SmartCode:     "HERA.WASTE_MANAGEMENT.FLEET.ENTITY.VEHICLE.v1",
		Module:        ModuleWasteManagement,
		DefaultFields: []string{"registration", "capacity", "driver", "last_service_date", "status"},
		KPIMetrics:    []string{"fleet_utilization", "fuel_per_km"},
		BusinessRules: BusinessRules{StatusWorkflow: true},
		UI:            UI{Icon: "Truck", PrimaryColor: "#4d7c0f", AccentColor: "#3f6212"},
	},
}
