package resumecheck

// Reference keyword sets for field classification. The sets are disjoint.
var (
	itKeywords = []string{
		"information technology", "sql", "mysql", "database", "networking", "cybersecurity",
		"linux", "system administration", "cloud computing", "it support", "computer hardware",
		"microsoft office", "excel", "ict", "troubleshooting",
	}
	softwareKeywords = []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "php", "html", "css",
		"react", "node js", "django", "flutter", "kotlin", "swift", "git",
		"software development", "programming", "coding",
	}
	multimediaKeywords = []string{
		"blender", "photoshop", "illustrator", "premiere pro", "after effects", "video editing",
		"graphic design", "animation", "ui design", "ux design", "figma", "canva",
		"photography", "motion graphics", "3d modeling",
	}
	scienceKeywords = []string{
		"science", "biology", "chemistry", "physics", "laboratory", "biotechnology", "ecology",
		"microbiology", "environmental science", "astronomy", "genetics", "anatomy",
	}
	mathKeywords = []string{
		"math", "mathematics", "additional mathematics", "algebra", "calculus", "geometry",
		"statistics", "trigonometry", "arithmetic", "mental arithmetic", "probability",
	}
)
