package opportunities

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jonathan/career-coach/internal/types"
)

// Catalog building blocks for generated listings. Real listing sources
// plug in behind the Finder; the generated catalogs keep the search and
// recommendation paths exercisable without network access.
var (
	jobTitles = []string{
		"Software Engineer", "Frontend Developer", "Backend Developer",
		"Full Stack Developer", "Data Scientist", "DevOps Engineer",
		"Product Manager", "UX Designer", "QA Engineer", "ML Engineer",
	}

	companies = []string{
		"TechCorp", "DataSys", "WebFront", "CloudScale", "AILabs",
		"DevForge", "CodeCraft", "ByteWorks", "QuantumTech", "PixelPerfect",
	}

	jobLocations = []string{
		"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA",
		"Boston, MA", "Chicago, IL", "Remote", "Denver, CO", "Atlanta, GA",
		"Portland, OR",
	}

	jobTypes = []string{"remote", "full-time", "part-time", "internship"}

	techStacks = []string{
		"Python, Django, PostgreSQL, AWS",
		"JavaScript, React, Node.js, MongoDB",
		"Java, Spring Boot, MySQL, Docker",
		"TypeScript, Angular, Express, Firebase",
		"Python, TensorFlow, PyTorch, Scikit-learn",
		"Kubernetes, Docker, Terraform, AWS",
		"Ruby, Rails, Redis, Heroku",
		"JavaScript, Vue.js, GraphQL, Postgres",
		"Golang, gRPC, Kubernetes, GCP",
		"C#, .NET Core, SQL Server, Azure",
	}

	jobDescriptionTemplates = []string{
		"We are looking for a talented %s to join our team. You will work on %s using %s. The ideal candidate has experience with %s.",
		"Join our team as a %s and help us build %s. You'll be working with %s. We're looking for someone with %s.",
		"Exciting opportunity for a %s to contribute to %s. Required skills: %s. Experience with %s is a plus.",
		"We need a skilled %s to help us %s. Our stack includes %s. Must have experience with %s.",
	}

	jobTasks = []string{
		"our core product",
		"scalable web applications",
		"machine learning models",
		"cloud infrastructure",
		"user-facing features",
		"internal tools",
		"data pipelines",
		"mobile applications",
		"payment systems",
		"e-commerce solutions",
	}

	jobRequirements = []string{
		"frontend frameworks",
		"database optimization",
		"cloud services",
		"CI/CD pipelines",
		"microservices",
		"RESTful APIs",
		"test-driven development",
		"agile methodologies",
		"distributed systems",
		"containerization",
	}

	hackathonNames = []string{
		"CodeFest", "HackVenture", "ByteHack", "DevChallenge", "AIHack",
		"CloudCraft", "DataDive", "WebBuilder", "MobileHacks", "GameJam",
	}

	organizers = []string{
		"TechCommunity", "HackerCorp", "DevNetwork", "OpenSource Alliance",
		"CodeSchool", "StudentTech", "Industry Connect", "StartupHub",
		"TechGiants", "UniversityLabs",
	}

	hackathonLocations = []string{
		"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA",
		"Boston, MA", "Online", "Chicago, IL", "Denver, CO", "Atlanta, GA",
		"London, UK",
	}

	hackathonDescriptionTemplates = []string{
		"A 48-hour hackathon where participants build innovative solutions for %s. Prizes for the best projects!",
		"Join us for a weekend of coding, collaboration, and creativity. This hackathon focuses on %s.",
		"Build something amazing for %s in just 24 hours. Open to coders of all skill levels.",
		"Put your skills to the test in this competitive hackathon. The theme is %s.",
		"A beginner-friendly hackathon exploring solutions for %s. Great networking opportunity!",
	}

	focusAreas = []string{
		"healthcare tech",
		"environmental sustainability",
		"education technology",
		"financial inclusion",
		"smart cities",
		"artificial intelligence",
		"blockchain applications",
		"mobile accessibility",
		"gaming innovations",
		"social impact",
	}

	skillLevels = []string{"beginner", "intermediate", "advanced"}
	teamSizes   = []string{"individual", "team", "both"}
)

// catalogSize is how many listings each generated catalog holds.
const catalogSize = 20

// GenerateMockJobs builds a catalog of job listings from the building
// blocks above, posted within the last 30 days.
func GenerateMockJobs(rng *rand.Rand, now time.Time) []types.JobListing {
	jobs := make([]types.JobListing, 0, catalogSize)
	for i := 0; i < catalogSize; i++ {
		title := pick(rng, jobTitles)
		description := fmt.Sprintf(pick(rng, jobDescriptionTemplates),
			title, pick(rng, jobTasks), pick(rng, techStacks), pick(rng, jobRequirements))

		jobs = append(jobs, types.JobListing{
			Title:       title,
			Company:     pick(rng, companies),
			Location:    pick(rng, jobLocations),
			JobType:     pick(rng, jobTypes),
			Description: description,
			URL:         fmt.Sprintf("https://example.com/jobs/%d", i),
			PostedDate:  now.AddDate(0, 0, -rng.Intn(31)),
		})
	}
	return jobs
}

// GenerateMockHackathons builds a catalog of hackathon listings starting
// between 10 days ago and 60 days out.
func GenerateMockHackathons(rng *rand.Rand, now time.Time) []types.Hackathon {
	hackathons := make([]types.Hackathon, 0, catalogSize)
	for i := 0; i < catalogSize; i++ {
		location := pick(rng, hackathonLocations)
		isRemote := location == "Online" || rng.Intn(2) == 0

		start := now.AddDate(0, 0, rng.Intn(71)-10)
		end := start.AddDate(0, 0, 1+rng.Intn(3))

		var prizes []string
		if rng.Intn(2) == 0 {
			prizes = []string{
				fmt.Sprintf("1st Place: $%d", (1+rng.Intn(5))*1000),
				fmt.Sprintf("2nd Place: $%d", (5+rng.Intn(6))*100),
				fmt.Sprintf("3rd Place: $%d", (1+rng.Intn(5))*100),
			}
		}

		hackathons = append(hackathons, types.Hackathon{
			Name:        fmt.Sprintf("%s %d", pick(rng, hackathonNames), 1+rng.Intn(10)),
			Organizer:   pick(rng, organizers),
			Location:    location,
			StartDate:   start,
			EndDate:     end,
			Description: fmt.Sprintf(pick(rng, hackathonDescriptionTemplates), pick(rng, focusAreas)),
			URL:         fmt.Sprintf("https://example.com/hackathons/%d", i),
			IsRemote:    isRemote,
			SkillLevel:  pick(rng, skillLevels),
			TeamSize:    pick(rng, teamSizes),
			Prizes:      prizes,
		})
	}
	return hackathons
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}
