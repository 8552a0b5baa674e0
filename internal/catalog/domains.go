// Package catalog provides the versioned default skill taxonomy, role
// requirement sets, and simulation action catalog that seed new profiles.
// All catalog data is read-mostly configuration; accessors return copies so
// callers can never mutate the seed in place.
package catalog

import "github.com/novonex/skill-align/internal/types"

// DefaultDomains is the fixed domain taxonomy that seeds a new skill vault.
// Every skill starts at level 0.
func DefaultDomains() []types.SkillDomain {
	return cloneDomains(defaultDomains)
}

var defaultDomains = []types.SkillDomain{
	{
		ID:          "sde",
		Name:        "Software Development",
		Description: "Backend, Frontend & Full Stack Development",
		Skills: []types.SkillItem{
			{ID: "javascript", Name: "JavaScript"},
			{ID: "typescript", Name: "TypeScript"},
			{ID: "python", Name: "Python"},
			{ID: "java", Name: "Java"},
			{ID: "cpp", Name: "C++"},
			{ID: "react", Name: "React"},
			{ID: "nodejs", Name: "Node.js"},
			{ID: "sql", Name: "SQL"},
			{ID: "mongodb", Name: "MongoDB"},
			{ID: "graphql", Name: "GraphQL"},
		},
	},
	{
		ID:          "dsa",
		Name:        "DSA",
		Description: "Data Structures & Algorithms",
		Skills: []types.SkillItem{
			{ID: "arrays", Name: "Arrays & Strings"},
			{ID: "hashmaps", Name: "Hashmaps & Sets"},
			{ID: "linkedlists", Name: "Linked Lists"},
			{ID: "trees", Name: "Trees & BST"},
			{ID: "graphs", Name: "Graphs"},
			{ID: "recursion", Name: "Recursion"},
			{ID: "dp", Name: "Dynamic Programming"},
			{ID: "sorting", Name: "Sorting & Searching"},
			{ID: "greedy", Name: "Greedy Algorithms"},
			{ID: "backtracking", Name: "Backtracking"},
		},
	},
	{
		ID:          "datascience",
		Name:        "Data Science & ML",
		Description: "Machine Learning & Data Analysis",
		Skills: []types.SkillItem{
			{ID: "python-data", Name: "Python for Data"},
			{ID: "numpy", Name: "NumPy"},
			{ID: "pandas", Name: "Pandas"},
			{ID: "matplotlib", Name: "Matplotlib/Seaborn"},
			{ID: "sklearn", Name: "Scikit-learn"},
			{ID: "ml-basics", Name: "ML Fundamentals"},
			{ID: "tensorflow", Name: "TensorFlow/PyTorch"},
			{ID: "sql-analytics", Name: "SQL for Analytics"},
		},
	},
	{
		ID:          "cybersecurity",
		Name:        "Cybersecurity",
		Description: "Security & Ethical Hacking",
		Skills: []types.SkillItem{
			{ID: "networking", Name: "Networking Basics"},
			{ID: "linux", Name: "Linux Fundamentals"},
			{ID: "owasp", Name: "OWASP Top 10"},
			{ID: "cryptography", Name: "Cryptography"},
			{ID: "pentesting", Name: "Penetration Testing"},
			{ID: "nmap", Name: "Nmap"},
			{ID: "burpsuite", Name: "Burp Suite"},
			{ID: "wireshark", Name: "Wireshark"},
		},
	},
	{
		ID:          "devops",
		Name:        "Cloud & DevOps",
		Description: "Cloud Services & CI/CD",
		Skills: []types.SkillItem{
			{ID: "git", Name: "Git & GitHub"},
			{ID: "docker", Name: "Docker"},
			{ID: "kubernetes", Name: "Kubernetes"},
			{ID: "cicd", Name: "CI/CD Pipelines"},
			{ID: "aws", Name: "AWS"},
			{ID: "gcp", Name: "GCP"},
			{ID: "azure", Name: "Azure"},
			{ID: "terraform", Name: "Terraform"},
		},
	},
	{
		ID:          "mobile",
		Name:        "Mobile Development",
		Description: "Android, iOS & Cross-Platform",
		Skills: []types.SkillItem{
			{ID: "kotlin", Name: "Kotlin (Android)"},
			{ID: "swift", Name: "Swift (iOS)"},
			{ID: "flutter", Name: "Flutter"},
			{ID: "react-native", Name: "React Native"},
			{ID: "mobile-apis", Name: "REST API Integration"},
			{ID: "firebase", Name: "Firebase"},
		},
	},
	{
		ID:          "genai",
		Name:        "AI Engineering",
		Description: "GenAI & LLM Integration",
		Skills: []types.SkillItem{
			{ID: "prompt-eng", Name: "Prompt Engineering"},
			{ID: "openai-api", Name: "OpenAI API"},
			{ID: "gemini-api", Name: "Gemini API"},
			{ID: "langchain", Name: "LangChain"},
			{ID: "rag", Name: "RAG Systems"},
			{ID: "fine-tuning", Name: "Model Fine-tuning"},
		},
	},
	{
		ID:          "embedded",
		Name:        "Embedded & IoT",
		Description: "Microcontrollers & Sensors",
		Skills: []types.SkillItem{
			{ID: "c-embedded", Name: "C Programming"},
			{ID: "arduino", Name: "Arduino"},
			{ID: "raspberry-pi", Name: "Raspberry Pi"},
			{ID: "sensors", Name: "Sensors & Actuators"},
			{ID: "mqtt", Name: "MQTT Protocol"},
			{ID: "rtos", Name: "RTOS Basics"},
		},
	},
}

func cloneDomains(domains []types.SkillDomain) []types.SkillDomain {
	out := make([]types.SkillDomain, len(domains))
	for i, d := range domains {
		out[i] = d
		out[i].Skills = make([]types.SkillItem, len(d.Skills))
		copy(out[i].Skills, d.Skills)
	}
	return out
}
