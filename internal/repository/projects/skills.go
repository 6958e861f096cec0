package projects

// skillCatalog is the curated skills database keyed by skill category.
var skillCatalog = map[string][]string{
	"frontend":    {"React", "Vue.js", "Angular", "TypeScript", "Tailwind CSS", "Next.js", "State management", "Responsive design"},
	"backend":     {"Node.js", "Python (Django/Flask)", "Java (Spring)", "Go", "RESTful APIs", "GraphQL", "Microservices"},
	"database":    {"PostgreSQL", "MongoDB", "Redis", "Database design", "Query optimization", "Migrations"},
	"devops":      {"Docker", "Kubernetes", "CI/CD", "AWS", "Azure", "Terraform", "Monitoring"},
	"ml_ai":       {"Python ML libraries", "TensorFlow/PyTorch", "NLP", "Computer vision", "LLMs", "RAG", "MLOps"},
	"mobile":      {"React Native", "Flutter", "iOS (Swift)", "Android (Kotlin)", "Mobile UI/UX"},
	"security":    {"OWASP Top 10", "Cryptography", "Penetration testing", "Security auditing", "Authentication"},
	"blockchain":  {"Solidity", "Web3", "Smart contracts", "DeFi", "Ethereum"},
	"soft_skills": {"Git/GitHub", "Agile", "Documentation", "Testing", "Code review", "Communication"},
}

// skillRule contributes skill categories matched against the career goal.
type skillRule struct {
	phrases    []string
	categories []string
}

var skillRules = []skillRule{
	{phrases: []string{"frontend", "react", "vue", "angular"}, categories: []string{"frontend", "soft_skills"}},
	{phrases: []string{"backend", "api", "server"}, categories: []string{"backend", "database", "soft_skills"}},
	{phrases: []string{"full-stack", "full stack"}, categories: []string{"frontend", "backend", "database", "devops", "soft_skills"}},
	{phrases: []string{"data scien", "analytics", "ml", "ai"}, categories: []string{"ml_ai", "database", "soft_skills"}},
	{phrases: []string{"devops", "sre", "cloud"}, categories: []string{"devops", "backend", "soft_skills"}},
	{phrases: []string{"mobile", "ios", "android"}, categories: []string{"mobile", "soft_skills"}},
	{phrases: []string{"security", "cybersecurity"}, categories: []string{"security", "backend", "soft_skills"}},
	{phrases: []string{"blockchain", "web3"}, categories: []string{"blockchain", "backend", "soft_skills"}},
}

var defaultSkillCategories = []string{"frontend", "backend", "soft_skills"}

// skillsFor returns recommended skills keyed by category for a career goal.
func skillsFor(goal string) map[string][]string {
	var selected []string
	seen := make(map[string]struct{})
	for _, rule := range skillRules {
		if !containsAny(goal, rule.phrases) {
			continue
		}
		for _, c := range rule.categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		selected = defaultSkillCategories
	}

	out := make(map[string][]string, len(selected))
	for _, c := range selected {
		if skills, ok := skillCatalog[c]; ok {
			out[c] = skills
		}
	}
	return out
}
