package main

import (
	"errors"

	"folio-hand/models"
	"folio-hand/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// seedDemoContent fills empty tables with demo data so a fresh instance
// renders a complete site. Tables that already hold rows are left untouched.
func seedDemoContent(store *storage.Store, log *zap.Logger) {
	seedDemoProfile(store, log)
	seedDemoSkills(store, log)
	seedDemoExperiences(store, log)
	seedDemoEducation(store, log)
	seedDemoCertifications(store, log)
	seedDemoActivities(store, log)
	seedDemoArticles(store, log)
	seedDemoGalleries(store, log)
	seedDemoServices(store, log)
	seedDemoProjects(store, log)
}

func seedDemoProfile(store *storage.Store, log *zap.Logger) {
	if _, err := store.Profile(); !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	_, err := store.UpsertProfile(models.ProfileInput{
		FullName:     "Nisa Nur Rahmadani",
		Position:     "Photographer & Design Developer",
		Email:        "rahn.capt@gmail.com",
		Phone:        "+62 821-7147-1351",
		Location:     "Karimun, Indonesia",
		Bio:          "Passionate photographer and IT developer with expertise in creating stunning visual experiences and robust digital solutions.",
		Age:          20,
		GithubURL:    "https://github.com/Rahd",
		InstagramURL: "https://instagram.com/@nisanurhmadani_",
		YoutubeURL:   "https://youtube.com/@rahn.capt",
	})
	if err != nil {
		log.Warn("Failed to seed demo profile", zap.Error(err))
	} else {
		log.Info("Demo profile seeded.")
	}
}

func seedDemoSkills(store *storage.Store, log *zap.Logger) {
	if existing, err := store.Skills(); err != nil || len(existing) > 0 {
		return
	}
	skills := []models.Skill{
		{Name: "Portrait Photography", Category: "Photography", Proficiency: 95, Description: "Expert in portrait photography with natural lighting"},
		{Name: "Landscape Photography", Category: "Photography", Proficiency: 90, Description: "Specialized in landscape and nature photography"},
		{Name: "React.js", Category: "Frontend Development", Proficiency: 85, Description: "Modern React with hooks and TypeScript"},
		{Name: "Node.js", Category: "Backend Development", Proficiency: 80, Description: "Server-side JavaScript with Express"},
		{Name: "UI/UX Design", Category: "Design", Proficiency: 70, Description: "User interface and experience design"},
	}
	for _, skill := range skills {
		if _, err := store.CreateSkill(skill); err != nil {
			log.Warn("Failed to seed demo skill", zap.String("name", skill.Name), zap.Error(err))
			return
		}
	}
	log.Info("Demo skills seeded.")
}

func seedDemoExperiences(store *storage.Store, log *zap.Logger) {
	if existing, err := store.Experiences(); err != nil || len(existing) > 0 {
		return
	}
	end := "2023-12"
	experiences := []models.Experience{
		{
			Title: "Senior Photographer", Company: "Studio Foto Pro", StartDate: "2023-01",
			Description:  "Lead photographer specializing in portrait and event photography",
			Technologies: models.StringList{"Canon EOS R5", "Adobe Lightroom", "Photoshop"},
		},
		{
			Title: "Full Stack Developer", Company: "Tech Solutions Inc", StartDate: "2022-06", EndDate: &end,
			Description:  "Developed web applications using React, Node.js, and PostgreSQL",
			Technologies: models.StringList{"React", "Node.js", "TypeScript", "PostgreSQL"},
		},
	}
	for _, exp := range experiences {
		if _, err := store.CreateExperience(exp); err != nil {
			log.Warn("Failed to seed demo experience", zap.String("title", exp.Title), zap.Error(err))
			return
		}
	}
	log.Info("Demo experiences seeded.")
}

func seedDemoEducation(store *storage.Store, log *zap.Logger) {
	if existing, err := store.EducationEntries(); err != nil || len(existing) > 0 {
		return
	}
	entries := []models.Education{
		{Degree: "Bachelor of Computer Science", Institution: "Universitas Indonesia", Year: "2024", Description: "Specialized in software engineering and web development", GPA: "3.8"},
		{Degree: "Photography Certification", Institution: "International Photography Institute", Year: "2022", Description: "Professional photography techniques and business", GPA: "A+"},
	}
	for _, edu := range entries {
		if _, err := store.CreateEducation(edu); err != nil {
			log.Warn("Failed to seed demo education", zap.String("degree", edu.Degree), zap.Error(err))
			return
		}
	}
	log.Info("Demo education seeded.")
}

func seedDemoCertifications(store *storage.Store, log *zap.Logger) {
	if existing, err := store.Certifications(); err != nil || len(existing) > 0 {
		return
	}
	certs := []models.Certification{
		{Name: "AWS Certified Developer", Issuer: "Amazon Web Services", Year: "2023", CredentialURL: "https://aws.amazon.com/certification/"},
		{Name: "Adobe Certified Expert", Issuer: "Adobe", Year: "2022", CredentialURL: "https://www.adobe.com/certification/"},
	}
	for _, cert := range certs {
		if _, err := store.CreateCertification(cert); err != nil {
			log.Warn("Failed to seed demo certification", zap.String("name", cert.Name), zap.Error(err))
			return
		}
	}
	log.Info("Demo certifications seeded.")
}

func seedDemoActivities(store *storage.Store, log *zap.Logger) {
	if existing, err := store.Activities(); err != nil || len(existing) > 0 {
		return
	}
	activities := []models.Activity{
		{Title: "Photography Workshop", Description: "Conducted photography workshop for beginners", Icon: "camera", Color: "blue"},
		{Title: "Open Source Contribution", Description: "Contributed to React ecosystem projects", Icon: "code", Color: "green"},
		{Title: "Art Exhibition", Description: "Featured photographer in local art gallery", Icon: "image", Color: "purple"},
	}
	for _, act := range activities {
		if _, err := store.CreateActivity(act); err != nil {
			log.Warn("Failed to seed demo activity", zap.String("title", act.Title), zap.Error(err))
			return
		}
	}
	log.Info("Demo activities seeded.")
}

func seedDemoArticles(store *storage.Store, log *zap.Logger) {
	if existing, err := store.Articles(); err != nil || len(existing) > 0 {
		return
	}
	articles := []models.Article{
		{
			Title: "Mastering Portrait Photography", Slug: "mastering-portrait-photography",
			Excerpt:  "Learn the essential techniques for capturing stunning portraits",
			Content:  "Portrait photography is an art that requires understanding of lighting, composition, and human psychology...",
			Category: "Photography", ReadTime: 8,
			ImageURL:  "https://images.unsplash.com/photo-1558655146-d09347e92766",
			Published: true, Featured: true,
		},
		{
			Title: "Building Modern Web Apps with React", Slug: "building-modern-web-apps-react",
			Excerpt:  "A comprehensive guide to building scalable React applications",
			Content:  "React has revolutionized the way we build user interfaces...",
			Category: "Development", ReadTime: 12,
			ImageURL:  "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5",
			Published: true,
		},
	}
	for _, article := range articles {
		if _, err := store.CreateArticle(article); err != nil {
			log.Warn("Failed to seed demo article", zap.String("slug", article.Slug), zap.Error(err))
			return
		}
	}
	log.Info("Demo articles seeded.")
}

func seedDemoGalleries(store *storage.Store, log *zap.Logger) {
	if existing, err := store.Galleries(); err != nil || len(existing) > 0 {
		return
	}
	galleries := []models.Gallery{
		{
			Title: "Portrait Collection", Description: "Professional portrait photography",
			ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
			Category: "portrait", Featured: true,
			Tags: models.StringList{"portrait", "professional", "lighting"},
		},
		{
			Title: "Landscape Adventures", Description: "Breathtaking landscape photography",
			ImageURL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
			Category: "landscape", Featured: true,
			Tags: models.StringList{"landscape", "nature", "adventure"},
		},
		{
			Title: "Event Photography", Description: "Capturing special moments",
			ImageURL: "https://images.unsplash.com/photo-1511795409834-ef04bbd61622",
			Category: "event",
			Tags:     models.StringList{"event", "celebration", "moments"},
		},
	}
	for _, g := range galleries {
		if _, err := store.CreateGallery(g); err != nil {
			log.Warn("Failed to seed demo gallery", zap.String("title", g.Title), zap.Error(err))
			return
		}
	}
	log.Info("Demo galleries seeded.")
}

func seedDemoServices(store *storage.Store, log *zap.Logger) {
	if existing, err := store.Services(); err != nil || len(existing) > 0 {
		return
	}
	services := []models.Service{
		{
			Title: "Portrait Photography", Description: "Professional portrait sessions with high-quality editing",
			Icon: "camera", Category: "photography", Price: "$150/session",
			Features: models.StringList{"2-hour session", "20 edited photos", "online gallery"},
		},
		{
			Title: "Web Development", Description: "Custom web applications built with modern technologies",
			Icon: "code", Category: "development", Price: "$2000/project",
			Features: models.StringList{"Responsive design", "SEO optimized", "maintenance included"},
		},
		{
			Title: "Event Photography", Description: "Complete event coverage for special occasions",
			Icon: "calendar", Category: "photography", Price: "$300/event",
			Features: models.StringList{"Full day coverage", "100+ edited photos", "delivery within 48h"},
		},
	}
	for _, svc := range services {
		if _, err := store.CreateService(svc); err != nil {
			log.Warn("Failed to seed demo service", zap.String("title", svc.Title), zap.Error(err))
			return
		}
	}
	log.Info("Demo services seeded.")
}

func seedDemoProjects(store *storage.Store, log *zap.Logger) {
	if existing, err := store.Projects(); err != nil || len(existing) > 0 {
		return
	}
	projects := []models.Project{
		{
			Title: "Personal Portfolio", Description: "Personal portfolio website built with React and Tailwind.",
			ImageURL: "https://images.unsplash.com/photo-1558655146-d09347e92766",
			Category: "Web", Technologies: models.StringList{"React", "Tailwind", "Node.js"},
			ProjectURL: "https://your-portfolio.com", GithubURL: "https://github.com/username/portfolio",
			Featured: true,
		},
		{
			Title: "Photo Gallery", Description: "Online photo gallery application.",
			ImageURL: "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5",
			Category: "Web", Technologies: models.StringList{"Next.js", "PostgreSQL"},
			ProjectURL: "https://your-gallery.com", GithubURL: "https://github.com/username/gallery",
		},
	}
	for _, p := range projects {
		if _, err := store.CreateProject(p); err != nil {
			log.Warn("Failed to seed demo project", zap.String("title", p.Title), zap.Error(err))
			return
		}
	}
	log.Info("Demo projects seeded.")
}
