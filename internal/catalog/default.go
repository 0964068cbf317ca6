package catalog

import "github.com/alexanderramin/advisor/internal/domain"

// DefaultVersion labels the bundled elective list.
const DefaultVersion = "default"

func defaultEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		{Title: "Principles of Managerial Accounting", Module: "Accounting"},
		{Title: "Principles of Macroeconomics", Module: "Economics"},
		{Title: "Principles of Finance", Module: "Finance"},
		{Title: "Operations Management", Module: "Operations"},
		{Title: "Applied Management Science", Module: "Management"},
		{Title: "Database Management Systems", Module: "IT & Systems"},
		{Title: "Introduction to Digital Forensics", Module: "Cybersecurity"},
		{Title: "Business Research Methods", Module: "Research"},
		{Title: "Consumer Protection Law", Module: "Law"},
		{Title: "Communication Skills in English II", Module: "Communication"},
		{Title: "Primary Rights in Rem and Accessory Real Rights in Rem", Module: "Law"},
		{Title: "Introduction to Information and Digital Technology", Module: "IT & Systems"},
		{Title: "Labour Law and Social Securities Law", Module: "Law"},
		{Title: "Communication Theories", Module: "Communication"},
		{Title: "Case Studies in PR and Advertising", Module: "Advertising"},
		{Title: "PR Media Production", Module: "Media"},
		{Title: "Introduction to Entrepreneurship", Module: "Entrepreneurship"},
		{Title: "Math for Life", Module: "Mathematics"},
		{Title: "Bioinformatics", Module: "Biotech"},
		{Title: "Cancer Biology I", Module: "Biotech"},
		{Title: "Introduction to Aeronautics", Module: "Engineering"},
		{Title: "UAE and GCC Society", Module: "Sociology"},
		{Title: "Pre-Calculus", Module: "Mathematics"},
		{Title: "General Science", Module: "General Science"},
		{Title: "Technical Communication for Work Place", Module: "Communication"},
		{Title: "Genome Biology", Module: "Biotech"},
		{Title: "Principles of Medical Genetics", Module: "Biotech"},
		{Title: "Accounting Information Systems", Module: "Accounting"},
		{Title: "Cost Accounting", Module: "Accounting"},
		{Title: "Artificial Intelligence for Engineers", Module: "Engineering"},
		{Title: "Cross-platform Mobile Application Develop.", Module: "App Development"},
		{Title: "Calculus I", Module: "Mathematics"},
		{Title: "Probability and Stochastic Processes", Module: "Mathematics"},
		{Title: "Project Scheduling and Time Management", Module: "Project Management"},
		{Title: "Project Costing and Financial Management", Module: "Finance"},
		{Title: "Leadership and Communication", Module: "Leadership"},
		{Title: "Methods of Teaching Math", Module: "Education"},
		{Title: "Business Ethics and Corporate Governance", Module: "Business Ethics"},
	}
}
