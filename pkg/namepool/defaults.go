package namepool

// Embedded fallback lists, used when the corresponding data file is missing.

var DefaultCompanyNames = []string{
	"TechFlow Solutions", "Vertex Analytics", "Nexus Platform",
	"Stellar Systems", "CloudVerse AI", "DataSync Pro", "Quantum Labs",
	"Aurora Cloud", "Prism Analytics", "Fusion Dynamics", "Zenith Tech",
	"Velocity Solutions", "Harmony Systems", "Nexar Global", "Cipher Labs",
	"Orbit Software", "Lumina Works", "Atlas Digital", "Beacon Industries",
	"Cascade Networks", "Drift Computing", "Ember Technologies",
	"Forge Platforms", "Gradient Systems", "Helix Data", "Ionic Ventures",
	"Juniper Stack", "Kinetic Cloud", "Latitude Labs", "Meridian Software",
}

var DefaultTeamNames = []string{
	"Product Development", "Engineering", "Marketing", "Sales",
	"Operations", "Customer Success", "DevOps", "QA & Testing",
	"Data Science", "Design", "Security", "Finance",
	"Platform", "Infrastructure", "Growth", "Support",
	"Analytics", "Mobile", "Research", "People Ops",
}

var DefaultProjectNames = []string{
	"Product Roadmap Q4", "Mobile App Redesign", "API v2 Migration",
	"Dashboard Optimization", "Customer Portal Launch",
	"Infrastructure Modernization", "AI Integration", "Website Redesign",
	"Onboarding Revamp", "Billing System Upgrade", "Search Relevance",
	"Performance Sprint", "Security Hardening", "Data Warehouse Migration",
	"Design System Rollout", "Partner Integrations", "Checkout Flow Rework",
	"Notification Service", "Reporting Suite", "Mobile Push Campaign",
	"Holiday Launch Plan", "Brand Refresh", "Accessibility Audit",
	"SSO Rollout", "Localization Phase 1", "Localization Phase 2",
	"Growth Experiments Q1", "Growth Experiments Q2", "Incident Response Playbook",
	"Content Calendar 2024", "Webinar Series", "SDK Release",
	"Internal Tools Sprint", "Support Automation", "Pricing Page Test",
	"Developer Docs Overhaul", "Customer Feedback Loop", "Release Pipeline v2",
	"Analytics Instrumentation", "Marketplace Beta", "Churn Reduction Initiative",
	"Email Deliverability", "Sales Enablement Kit", "Quarterly Planning",
	"Capacity Planning", "Observability Rollout", "Edge Caching Project",
	"Compliance Readiness", "Vendor Consolidation", "Hiring Pipeline Revamp",
}

var DefaultIndustries = []string{
	"Software/SaaS", "FinTech", "E-commerce", "Media/Publishing",
	"Healthcare Tech", "EdTech", "Logistics", "Real Estate",
	"Enterprise Software", "Cloud Infrastructure",
}
