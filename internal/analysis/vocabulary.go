package analysis

// skillVocabulary is the fixed, ordered vocabulary the matcher scans for.
// Entries are lowercase phrases spanning technical, soft, and domain skills.
// The list is loaded once at process start and never mutated.
var skillVocabulary = []string{
	"python", "java", "javascript", "html", "css", "sql", "react", "angular",
	"node", "django", "flask", "spring", "aws", "docker", "kubernetes",
	"machine learning", "data analysis", "project management", "communication",
	"teamwork", "leadership", "problem solving", "research", "design",
	"c++", "c#", "ruby", "php", "swift", "kotlin", "go", "rust",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "matplotlib",
	"git", "jenkins", "travis ci", "circle ci", "github", "gitlab",
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"linux", "ubuntu", "centos", "bash", "shell scripting",
	"agile", "scrum", "kanban", "jira", "confluence",
	"excel", "tableau", "power bi", "spark", "hadoop",
	"networking", "security", "encryption", "firewall",
	"api", "rest", "graphql", "soap", "microservices",
	"testing", "unit testing", "integration testing", "selenium",
	"devops", "ci/cd", "terraform", "ansible", "puppet",
	"cloud", "azure", "gcp", "firebase", "heroku",
	"mobile development", "android", "ios", "flutter", "react native",
	"database design", "orm", "hibernate", "entity framework",
	"ux/ui", "wireframing", "prototyping", "adobe creative suite",
	"seo", "digital marketing", "content management", "wordpress",
	"salesforce", "sap", "oracle", "erp", "crm",
	"financial analysis", "risk management", "accounting", "auditing",
	"customer service", "technical support", "troubleshooting",
	"product management", "business analysis", "requirements gathering",
	"quality assurance", "qa", "six sigma", "lean",
	"copywriting", "technical writing", "documentation",
	"public speaking", "presentation", "negotiation",
	"time management", "organization", "multitasking",
	"critical thinking", "creativity", "innovation",
	"foreign languages", "spanish", "french", "german", "chinese",
	"data visualization", "d3.js", "chart.js", "plotly",
	"blockchain", "cryptocurrency", "ethereum", "smart contracts",
	"artificial intelligence", "natural language processing", "computer vision",
	"iot", "embedded systems", "arduino", "raspberry pi",
	"cybersecurity", "penetration testing", "vulnerability assessment",
	"big data", "data mining", "data warehousing",
	"robotics", "automation", "control systems",
	"supply chain", "logistics", "inventory management",
	"human resources", "recruitment", "training",
	"legal", "compliance", "regulatory affairs",
	"healthcare", "clinical research", "patient care",
	"construction", "civil engineering", "structural analysis",
}
