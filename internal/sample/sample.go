// Package sample provides the built-in sample profile and loads
// alternative sample files.
package sample

import (
	"github.com/jonathan/resume-builder/internal/types"
)

var janeDoe = types.Profile{
	Name:     "Jane Doe",
	Location: "San Francisco, CA",
	Phone:    "(123) 456-7890",
	Email:    "jane.doe@example.com",
	LinkedIn: "https://linkedin.com/in/janedoe",
	GitHub:   "https://github.com/janedoe",
	Education: []types.Education{
		{
			Institution: "University of California, Berkeley",
			Location:    "Berkeley, CA",
			Degree:      "M.S. in Computer Science",
			Dates:       "August 2021 -- May 2023",
			GPA:         "3.95/4.00",
		},
		{
			Institution: "Stanford University",
			Location:    "Palo Alto, CA",
			Degree:      "B.S. in Electrical Engineering",
			Dates:       "August 2017 -- May 2021",
			GPA:         "3.80/4.00",
		},
	},
	Experience: []types.Experience{
		{
			Company:  "Google",
			Location: "Mountain View, CA",
			Role:     "Software Engineer",
			Years:    "June 2023 -- Present",
			Details: "• Developed and maintained scalable backend services for Google Cloud Platform.\n" +
				"• Collaborated with a team of 5 engineers to launch a new feature, increasing user engagement by 20%.\n" +
				"• Optimized database queries, reducing response times by 30%.",
		},
		{
			Company:  "Meta",
			Location: "Menlo Park, CA",
			Role:     "Software Engineering Intern",
			Years:    "May 2022 -- August 2022",
			Details: "• Implemented a new data pipeline using Python and Apache Spark to process large datasets.\n" +
				"• Contributed to the development of a user-facing tool, improving the efficiency of A/B testing.\n" +
				"• Wrote unit and integration tests to ensure code quality.",
		},
	},
	Projects: []types.Project{
		{
			Name:         "Personal Portfolio Website",
			Technologies: "HTML, CSS, JavaScript, React",
			Dates:        "Spring 2023",
			Summary: "A responsive personal website to showcase my projects, skills, and resume. " +
				"The site features a clean design and is optimized for both desktop and mobile devices.",
		},
	},
	Skills: &types.Skills{
		Languages: "Python, JavaScript, C++, Java, SQL",
		Software:  "AWS, Docker, Git, Flask, Django, React, Node.js",
	},
}

// Default returns a fresh copy of the built-in sample profile.
func Default() *types.Profile {
	return janeDoe.Clone()
}
