package services

import "counselling-module/models"

// Static fallback content served when the remote content store is
// unreachable. Each set keeps the shape of its live counterpart so the site
// renders the section normally in degraded mode.

// FallbackTestimonials returns the built-in testimonial set.
func FallbackTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{Name: "Ananya Sharma", Role: "B.Tech CSE, VIT Vellore", Quote: "The psychometric assessment opened options I had never considered. I went in confused and came out with a plan.", Rating: 5},
		{Name: "Rohan Mehta", Role: "MBBS aspirant, Pune", Quote: "My counsellor helped me shortlist universities realistically instead of chasing rankings. Worth every rupee.", Rating: 5},
		{Name: "Sneha Iyer", Role: "MSc Data Science, TU Munich", Quote: "From SOP reviews to visa guidance, the complete package carried me through the whole admission cycle.", Rating: 4},
	}
}

// FallbackBlogPosts returns the built-in blog post set.
func FallbackBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{Title: "How to choose between engineering branches", Excerpt: "Placement statistics are a lagging indicator. Here is what to look at instead.", Author: "Team Margdarshan"},
		{Title: "Study abroad on a budget: 2026 edition", Excerpt: "Tuition-free countries, scholarships, and the real cost of living abroad.", Author: "Team Margdarshan"},
		{Title: "Psychometric tests, explained", Excerpt: "What aptitude assessments actually measure and how counsellors use them.", Author: "Team Margdarshan"},
	}
}

// FallbackUniversities returns the built-in university set.
func FallbackUniversities() []models.University {
	return []models.University{
		{Name: "University of Delhi", Country: "India"},
		{Name: "Manipal Academy of Higher Education", Country: "India"},
		{Name: "Technical University of Munich", Country: "Germany"},
		{Name: "University of Toronto", Country: "Canada"},
	}
}

// FallbackCareerPaths returns the built-in career path set.
func FallbackCareerPaths() []models.CareerPath {
	return []models.CareerPath{
		{Title: "Software Engineering", Summary: "Build software systems across product companies, startups and services.", Demand: "high"},
		{Title: "Data Science", Summary: "Turn data into decisions with statistics, ML and domain knowledge.", Demand: "high"},
		{Title: "Design (UI/UX)", Summary: "Shape how people experience digital products.", Demand: "growing"},
		{Title: "Healthcare & Medicine", Summary: "Clinical and allied-health careers, in India and abroad.", Demand: "steady"},
	}
}

// FallbackFAQs returns the built-in FAQ set.
func FallbackFAQs() []models.FAQ {
	return []models.FAQ{
		{Question: "How long is a counselling session?", Answer: "A standard 1:1 session runs 45 minutes. Complete Counselling plans include unlimited sessions for 6 months."},
		{Question: "Is the psychometric assessment online?", Answer: "Yes. You receive a link after booking and your counsellor walks you through the report in the session."},
		{Question: "Can parents join the session?", Answer: "Absolutely. The Gold plan includes a dedicated parent counselling session, and parents are welcome in any plan."},
		{Question: "What if I miss my scheduled session?", Answer: "Sessions can be rescheduled up to 4 hours in advance at no cost from the link in your confirmation email."},
	}
}
