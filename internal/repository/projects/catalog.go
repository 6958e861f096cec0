package projects

import "github.com/pathwise-io/pathwise/internal/domain/record"

// Topic categories for project selection.
const (
	categoryWebDevelopment    = "web_development"
	categoryMobileDevelopment = "mobile_development"
	categoryDataScience       = "data_science"
	categoryMachineLearning   = "machine_learning"
	categoryCloudDevOps       = "cloud_devops"
	categoryCybersecurity     = "cybersecurity"
	categoryAILLM             = "ai_llm"
	categoryBlockchain        = "blockchain"
	categoryGeneral           = "general"
)

// catalog is the curated project database keyed by topic category.
var catalog = map[string][]record.Project{
	categoryWebDevelopment: {
		{
			Name:        "E-Commerce Platform",
			Description: "Full-stack e-commerce site with product catalog, shopping cart, checkout, and payment integration",
			Skills:      []string{"React/Vue/Angular", "Node.js/Python/Java backend", "PostgreSQL/MongoDB", "Stripe/PayPal API", "Authentication", "RESTful APIs"},
			Difficulty:  "Intermediate",
			Duration:    "4-6 weeks",
			Value:       "High",
		},
		{
			Name:        "Social Media Dashboard",
			Description: "Analytics dashboard that aggregates data from multiple social media platforms",
			Skills:      []string{"Frontend framework", "API integration", "Data visualization", "OAuth", "Real-time updates"},
			Difficulty:  "Intermediate",
			Duration:    "3-4 weeks",
			Value:       "High",
		},
		{
			Name:        "Real-Time Chat Application",
			Description: "WebSocket-based chat with rooms, direct messages, file sharing, and typing indicators",
			Skills:      []string{"WebSockets", "Real-time communication", "Authentication", "File upload", "Database design"},
			Difficulty:  "Intermediate",
			Duration:    "3-4 weeks",
			Value:       "High",
		},
	},
	categoryMobileDevelopment: {
		{
			Name:        "Fitness Tracking App",
			Description: "Mobile app for tracking workouts, nutrition, and progress with data visualization",
			Skills:      []string{"React Native/Flutter", "Local storage", "Charts/graphs", "Camera integration", "Health APIs"},
			Difficulty:  "Intermediate",
			Duration:    "4-5 weeks",
			Value:       "High",
		},
		{
			Name:        "Expense Tracker",
			Description: "Personal finance app with budget tracking, categories, and spending analytics",
			Skills:      []string{"Mobile development", "SQLite/Realm", "Data visualization", "Export features", "Authentication"},
			Difficulty:  "Beginner-Intermediate",
			Duration:    "2-3 weeks",
			Value:       "Medium-High",
		},
	},
	categoryDataScience: {
		{
			Name:        "Predictive Analytics Dashboard",
			Description: "ML-powered dashboard for business forecasting with interactive visualizations",
			Skills:      []string{"Python", "Scikit-learn/TensorFlow", "Pandas/NumPy", "Plotly/Dash", "Time series analysis"},
			Difficulty:  "Advanced",
			Duration:    "5-7 weeks",
			Value:       "Very High",
		},
		{
			Name:        "Sentiment Analysis Tool",
			Description: "NLP application that analyzes sentiment from social media, reviews, or customer feedback",
			Skills:      []string{"NLP", "Python", "NLTK/spaCy", "Data preprocessing", "API development", "Visualization"},
			Difficulty:  "Intermediate-Advanced",
			Duration:    "3-4 weeks",
			Value:       "High",
		},
		{
			Name:        "Image Classification System",
			Description: "CNN-based image classifier for specific domain (medical, wildlife, products, etc.)",
			Skills:      []string{"Deep learning", "TensorFlow/PyTorch", "Computer vision", "Data augmentation", "Model deployment"},
			Difficulty:  "Advanced",
			Duration:    "4-6 weeks",
			Value:       "Very High",
		},
	},
	categoryMachineLearning: {
		{
			Name:        "Recommendation Engine",
			Description: "Content recommendation system using collaborative filtering or deep learning",
			Skills:      []string{"ML algorithms", "Python", "Data processing", "Matrix factorization", "Neural networks"},
			Difficulty:  "Advanced",
			Duration:    "4-5 weeks",
			Value:       "Very High",
		},
		{
			Name:        "Fraud Detection System",
			Description: "ML model to detect fraudulent transactions with real-time scoring",
			Skills:      []string{"Classification algorithms", "Feature engineering", "Imbalanced data handling", "Model evaluation", "API deployment"},
			Difficulty:  "Advanced",
			Duration:    "5-6 weeks",
			Value:       "Very High",
		},
	},
	categoryCloudDevOps: {
		{
			Name:        "Microservices Architecture",
			Description: "Containerized microservices with Docker, Kubernetes, and CI/CD pipeline",
			Skills:      []string{"Docker", "Kubernetes", "CI/CD", "AWS/Azure/GCP", "Monitoring", "Load balancing"},
			Difficulty:  "Advanced",
			Duration:    "5-7 weeks",
			Value:       "Very High",
		},
		{
			Name:        "Infrastructure as Code Platform",
			Description: "Automated cloud infrastructure provisioning using Terraform/CloudFormation",
			Skills:      []string{"Terraform", "AWS/Azure", "Automation", "Networking", "Security", "Documentation"},
			Difficulty:  "Intermediate-Advanced",
			Duration:    "3-4 weeks",
			Value:       "High",
		},
	},
	categoryCybersecurity: {
		{
			Name:        "Security Vulnerability Scanner",
			Description: "Automated tool to scan web applications for common vulnerabilities (XSS, SQL injection, etc.)",
			Skills:      []string{"Security testing", "Python", "Web scraping", "OWASP Top 10", "Reporting"},
			Difficulty:  "Advanced",
			Duration:    "4-5 weeks",
			Value:       "Very High",
		},
		{
			Name:        "Password Manager",
			Description: "Secure password storage application with encryption and browser integration",
			Skills:      []string{"Cryptography", "Security best practices", "Desktop/mobile dev", "Database encryption"},
			Difficulty:  "Intermediate-Advanced",
			Duration:    "3-4 weeks",
			Value:       "High",
		},
	},
	categoryAILLM: {
		{
			Name:        "RAG-Based Chatbot",
			Description: "Retrieval-Augmented Generation chatbot using vector databases and LLMs",
			Skills:      []string{"LangChain/LlamaIndex", "Vector databases", "OpenAI/Anthropic APIs", "Embeddings", "RAG architecture"},
			Difficulty:  "Advanced",
			Duration:    "4-6 weeks",
			Value:       "Very High",
		},
		{
			Name:        "AI Code Assistant",
			Description: "IDE plugin that helps with code completion, documentation, and refactoring using LLMs",
			Skills:      []string{"LLM APIs", "IDE integration", "Prompt engineering", "Code parsing", "Testing"},
			Difficulty:  "Advanced",
			Duration:    "5-7 weeks",
			Value:       "Very High",
		},
	},
	categoryBlockchain: {
		{
			Name:        "NFT Marketplace",
			Description: "Decentralized marketplace for creating, buying, and selling NFTs",
			Skills:      []string{"Solidity", "Web3.js/Ethers.js", "Smart contracts", "IPFS", "MetaMask integration"},
			Difficulty:  "Advanced",
			Duration:    "6-8 weeks",
			Value:       "Very High",
		},
		{
			Name:        "DeFi Yield Aggregator",
			Description: "Platform that finds and optimizes yield farming opportunities across protocols",
			Skills:      []string{"Smart contracts", "DeFi protocols", "Web3", "Financial calculations", "Security auditing"},
			Difficulty:  "Advanced",
			Duration:    "7-9 weeks",
			Value:       "Very High",
		},
	},
	categoryGeneral: {
		{
			Name:        "Portfolio Website with CMS",
			Description: "Personal portfolio with custom CMS for managing projects, blog, and contact",
			Skills:      []string{"Frontend", "Backend", "CMS", "SEO", "Responsive design", "Deployment"},
			Difficulty:  "Beginner-Intermediate",
			Duration:    "2-3 weeks",
			Value:       "Medium",
		},
		{
			Name:        "CLI Tool for Developers",
			Description: "Command-line utility that solves a specific developer workflow problem",
			Skills:      []string{"Python/Go/Rust", "CLI frameworks", "Package management", "Documentation", "Testing"},
			Difficulty:  "Intermediate",
			Duration:    "2-3 weeks",
			Value:       "Medium-High",
		},
	},
}

// categoryRule contributes topic categories matched against the career goal.
type categoryRule struct {
	phrases    []string
	categories []string
}

// Every matching rule contributes its categories; note that machine-learning
// goals deliberately pull in data_science as well.
var categoryRules = []categoryRule{
	{phrases: []string{"web", "full-stack", "full stack", "frontend", "backend"}, categories: []string{categoryWebDevelopment}},
	{phrases: []string{"mobile", "ios", "android", "app"}, categories: []string{categoryMobileDevelopment}},
	{phrases: []string{"data scien", "analytics", "data analy"}, categories: []string{categoryDataScience}},
	{phrases: []string{"machine learning", "ml engineer", "ai engineer", "deep learning"}, categories: []string{categoryMachineLearning, categoryDataScience}},
	{phrases: []string{"devops", "sre", "cloud", "infrastructure"}, categories: []string{categoryCloudDevOps}},
	{phrases: []string{"security", "cybersecurity", "penetration"}, categories: []string{categoryCybersecurity}},
	{phrases: []string{"llm", "gpt", "ai", "chatbot", "rag"}, categories: []string{categoryAILLM}},
	{phrases: []string{"blockchain", "web3", "defi", "nft", "crypto"}, categories: []string{categoryBlockchain}},
}

// defaultCategories is used when no rule matches the career goal.
var defaultCategories = []string{categoryGeneral, categoryWebDevelopment}
