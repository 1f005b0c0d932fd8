package main

import (
	"context"
	"errors"
	"log"

	"github.com/lib/pq"

	"marketing-platform/config"
	"marketing-platform/db"
	"marketing-platform/domain/auth"
	"marketing-platform/domain/blog"
	"marketing-platform/domain/casestudy"
	"marketing-platform/domain/testimonial"
	"marketing-platform/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	database, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	// Seed admin user
	hashed, err := utils.HashPassword("changeme123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	admins := auth.NewRepository(database)
	if _, err := admins.Create(ctx, "admin@example.com", "Admin", hashed); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			log.Println("Admin user already exists, skipping")
		} else {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
	} else {
		log.Println("Seeded admin user: admin@example.com")
	}

	// Seed sample blog post
	posts := blog.NewRepository(database)
	post := &blog.BlogPost{
		Title:     "Why Omnichannel Messaging Wins",
		Slug:      utils.Slugify("Why Omnichannel Messaging Wins"),
		Excerpt:   "Reaching customers on the channel they actually read.",
		Content:   "Customers no longer live on a single channel. A campaign that combines SMS, WhatsApp and email reaches them where they are, with fallbacks when a channel stays silent.",
		Author:    "Marketing Team",
		Category:  "messaging",
		Tags:      pq.StringArray{"sms", "whatsapp", "email"},
		Published: true,
	}
	if err := posts.Create(ctx, post); err != nil {
		log.Fatalf("Failed to seed blog post: %v", err)
	}
	log.Printf("Seeded blog post: %s", post.Slug)

	// Seed sample testimonial
	testimonials := testimonial.NewRepository(database)
	quote := &testimonial.Testimonial{
		ClientName:      "Ravi Menon",
		ClientPosition:  "Head of Growth",
		ClientCompany:   "Homeland Realty",
		TestimonialText: "Campaign delivery rates went up noticeably within the first month of switching.",
		Rating:          5,
		Featured:        true,
		Published:       true,
	}
	if err := testimonials.Create(ctx, quote); err != nil {
		log.Fatalf("Failed to seed testimonial: %v", err)
	}
	log.Printf("Seeded testimonial from: %s", quote.ClientName)

	// Seed sample case study
	caseStudies := casestudy.NewRepository(database)
	study := &casestudy.CaseStudy{
		Title:        "Retail Loyalty Program Rollout",
		Slug:         utils.Slugify("Retail Loyalty Program Rollout"),
		ClientName:   "Jaleel Cash & Carry",
		Industry:     "retail",
		Challenge:    "The client needed a loyalty program reaching customers across stores without a companion app or any new point-of-sale hardware.",
		Solution:     "A QR-based digital loyalty card backed by SMS and WhatsApp notifications, integrated with the existing billing system through our APIs.",
		Results:      "Repeat purchases rose measurably within one quarter and the program enrolled a majority of weekly shoppers without printed cards.",
		Technologies: pq.StringArray{"sms", "whatsapp", "qr"},
		Published:    true,
	}
	if err := caseStudies.Create(ctx, study); err != nil {
		log.Fatalf("Failed to seed case study: %v", err)
	}
	log.Printf("Seeded case study: %s", study.Slug)

	log.Println("Seeding completed!")
}
