package content

// Default returns the compiled-in catalog used when no database is configured.
func Default() *Catalog {
	return &Catalog{
		Features: []Feature{
			{"lucide--map-pin", "Live Walk Tracking", "Follow every walk on a live map with route, distance and bathroom-break markers sent straight to your phone.", "primary"},
			{"lucide--heart-pulse", "Health Records", "Vaccinations, vet visits and medication reminders in one timeline you can share with any clinic.", "secondary"},
			{"lucide--calendar-check", "Smart Scheduling", "Book trusted sitters and walkers around your calendar with automatic reminders for both sides.", "accent"},
			{"lucide--shield-check", "Verified Carers", "Every carer is background checked, reviewed by owners and insured for the time they spend with your pet.", "primary"},
			{"lucide--messages-square", "Photo Updates", "Get photos and short notes during each visit so you always know how your pet is doing.", "secondary"},
			{"lucide--wallet", "Simple Payments", "Pay carers in the app with one tap and keep all receipts in a single place.", "accent"},
		},
		Tabs: []ShowcaseTab{
			{
				ID:      "tracking",
				Label:   "Tracking",
				Icon:    "lucide--route",
				Heading: "Know where every walk goes",
				Body:    "GPS tracking starts the moment your walker checks in and ends with a full report.",
				Bullets: []string{"Live route map", "Distance and duration", "Check-in and check-out photos"},
			},
			{
				ID:      "health",
				Label:   "Health",
				Icon:    "lucide--stethoscope",
				Heading: "A medical history that travels with your pet",
				Body:    "Store records once and share them with vets, groomers and sitters in seconds.",
				Bullets: []string{"Vaccination reminders", "Medication schedules", "Shareable vet summaries"},
			},
			{
				ID:      "community",
				Label:   "Community",
				Icon:    "lucide--users",
				Heading: "Meet owners near you",
				Body:    "Find playdates, swap sitting duties and discover pet-friendly places in your neighbourhood.",
				Bullets: []string{"Local playgroups", "Owner-to-owner sitting", "Pet-friendly place guide"},
			},
		},
		Plans: []Plan{
			{
				ID:          "monthly",
				Name:        "Monthly",
				PriceCents:  999,
				Period:      "month",
				Description: "Everything you need, billed monthly. Cancel any time.",
				Highlights:  []string{"Unlimited walk tracking", "Health records for 2 pets", "Priority booking"},
			},
			{
				ID:          "annual",
				Name:        "Annual",
				PriceCents:  8900,
				Period:      "year",
				Description: "Two months free compared to monthly billing.",
				Highlights:  []string{"Everything in Monthly", "Unlimited pets", "Free vet chat every quarter"},
				Featured:    true,
			},
		},
		Testimonials: []Testimonial{
			{"Maya R.", "Owner of two huskies", "I can finally see where the dogs go while I'm at work. The walk reports are the best part of my afternoon.", 5},
			{"Tom B.", "Cat person", "All of Luna's vet records in one place saved us a repeat vaccination last spring.", 5},
			{"Priya S.", "First-time puppy owner", "Booking a sitter used to take days of messaging. Now it takes two taps.", 4},
		},
	}
}
