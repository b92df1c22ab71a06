package utils

// Payment Status Constants
const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
	StatusFailed  = "FAILED"
)

// Content Store Collections
const (
	CollectionConsultations = "consultations"
	CollectionTestimonials  = "testimonials"
	CollectionBlogPosts     = "blog-posts"
	CollectionUniversities  = "universities"
	CollectionCareerPaths   = "career-paths"
	CollectionFAQs          = "faqs"
)

// Content document status filter value
const StatusPublished = "published"
