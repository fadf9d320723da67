package impl

import (
	"strings"

	"engineershub/internal/domain/entity"
)

const (
	defaultBranch      = "Computer Science"
	defaultYear        = "Final Year"
	defaultCollege     = "Engineering College"
	defaultStudentName = "Engineering Student"
	maxProfileSkills   = 8
	maxCertifications  = 3
)

// ProfileLocations are the cities a synthetic profile is placed in.
var ProfileLocations = []string{"Bangalore", "Mumbai", "Delhi", "Hyderabad", "Pune", "Chennai", "Kolkata", "Ahmedabad"}

type branchTable struct {
	skills         []string
	projects       []*entity.ProfileProject
	summary        string // %s is the year text
	internship     *entity.ProfileExperience
	certifications []string
	interests      []string
}

var branchTables = map[string]*branchTable{
	"Computer Science": {
		skills: []string{"JavaScript", "Python", "Java", "React", "Node.js", "Machine Learning", "Data Structures", "Algorithms", "MongoDB", "SQL"},
		projects: []*entity.ProfileProject{
			{Title: "AI-Powered Student Management System", Technologies: []string{"React", "Node.js", "MongoDB", "Machine Learning"}},
			{Title: "Real-time Chat Application", Technologies: []string{"JavaScript", "Socket.io", "React", "Express"}},
		},
		summary: "Passionate %s Computer Science student with strong foundation in software development, algorithms, and emerging technologies. " +
			"Experienced in full-stack development and machine learning. Eager to contribute to innovative projects and grow in a dynamic tech environment.",
		internship: &entity.ProfileExperience{
			Title:    "Software Development Intern",
			Company:  "Tech Startup",
			Duration: "3 months",
			Description: "Developed web applications using React and Node.js. Worked on machine learning projects using Python and TensorFlow. " +
				"Collaborated with cross-functional teams to deliver user-friendly solutions.",
		},
		certifications: []string{"Python Programming", "Machine Learning Basics", "AWS Cloud Practitioner", "React Development"},
		interests:      []string{"Artificial Intelligence", "Open Source", "Startups", "Innovation", "Problem Solving"},
	},
	"Information Technology": {
		skills: []string{"JavaScript", "Python", "React", "Node.js", "Database Management", "System Administration", "Network Security", "Cloud Computing"},
		projects: []*entity.ProfileProject{
			{Title: "Cloud-based File Storage System", Technologies: []string{"React", "Node.js", "AWS", "MongoDB"}},
			{Title: "Network Security Monitor", Technologies: []string{"Python", "Flask", "Network Tools", "Dashboard"}},
		},
		summary: "Dedicated %s IT student with expertise in system administration, network security, and database management. " +
			"Strong problem-solving skills and experience in cloud technologies. Looking for opportunities to apply technical knowledge in real-world IT solutions.",
		internship: &entity.ProfileExperience{
			Title:       "IT Support Intern",
			Company:     "Local IT Company",
			Duration:    "2 months",
			Description: "Provided technical support, managed network systems, and implemented security protocols. Gained experience in cloud services and database administration.",
		},
		certifications: []string{"CompTIA Network+", "Cisco CCNA", "Microsoft Azure Fundamentals", "Cybersecurity Basics"},
		interests:      []string{"Cybersecurity", "Cloud Computing", "Network Administration", "Technology Trends"},
	},
	"Electronics": {
		skills: []string{"C++", "Python", "MATLAB", "Embedded Systems", "IoT", "Signal Processing", "PCB Design", "Microcontrollers", "VLSI"},
		projects: []*entity.ProfileProject{
			{Title: "IoT Home Automation System", Technologies: []string{"Arduino", "Raspberry Pi", "Sensors", "Mobile App"}},
			{Title: "Smart Health Monitoring Device", Technologies: []string{"Embedded C", "Sensors", "Bluetooth", "Android"}},
		},
		summary: "Innovative %s Electronics student specializing in embedded systems, IoT, and signal processing. " +
			"Hands-on experience with microcontrollers and circuit design. Passionate about creating smart solutions that bridge hardware and software.",
		internship: &entity.ProfileExperience{
			Title:    "Hardware Development Intern",
			Company:  "Electronics Firm",
			Duration: "2 months",
			Description: "Assisted in PCB design and testing. Worked on IoT projects and embedded system programming. " +
				"Gained practical experience in circuit analysis and debugging.",
		},
		certifications: []string{"Arduino Programming", "PCB Design", "IoT Fundamentals", "Embedded C Programming"},
		interests:      []string{"IoT", "Robotics", "Innovation", "Hardware Design", "Smart Systems"},
	},
	"Mechanical": {
		skills: []string{"CAD", "SolidWorks", "AutoCAD", "Python", "MATLAB", "Thermodynamics", "Fluid Mechanics", "Manufacturing", "3D Modeling"},
		projects: []*entity.ProfileProject{
			{Title: "Automated Manufacturing System", Technologies: []string{"SolidWorks", "PLC", "Sensors", "Control Systems"}},
			{Title: "Solar Panel Tracking System", Technologies: []string{"CAD Design", "Arduino", "Servo Motors", "Programming"}},
		},
		summary: "Driven %s Mechanical Engineering student with expertise in design, manufacturing, and automation. " +
			"Proficient in CAD software and modern manufacturing techniques. Interested in sustainable engineering and Industry 4.0 technologies.",
		certifications: []string{"SolidWorks Certification", "AutoCAD Professional", "Lean Manufacturing", "3D Printing Technology"},
		interests:      []string{"Automation", "Sustainable Engineering", "Manufacturing", "CAD Design", "Innovation"},
	},
	"Electrical": {
		skills: []string{"MATLAB", "Python", "C++", "Power Systems", "Control Systems", "Embedded Systems", "PLC Programming", "Circuit Design"},
		projects: []*entity.ProfileProject{
			{Title: "Smart Grid Management System", Technologies: []string{"MATLAB", "Power Systems", "IoT", "Data Analytics"}},
			{Title: "Renewable Energy Controller", Technologies: []string{"Embedded Systems", "Power Electronics", "SCADA"}},
		},
		summary: "Ambitious %s Electrical Engineering student focused on power systems, control engineering, and renewable energy. " +
			"Experience with embedded systems and automation. Committed to developing efficient and sustainable electrical solutions.",
		certifications: []string{"MATLAB Certification", "PLC Programming", "Power System Analysis", "Renewable Energy Systems"},
		interests:      []string{"Renewable Energy", "Smart Grids", "Automation", "Power Systems", "Green Technology"},
	},
	"Civil": {
		skills: []string{"AutoCAD", "STAAD Pro", "Python", "Project Management", "Structural Design", "Construction Management", "GIS", "Surveying"},
		projects: []*entity.ProfileProject{
			{Title: "Smart City Planning System", Technologies: []string{"GIS", "AutoCAD", "Data Analysis", "3D Modeling"}},
			{Title: "Earthquake Resistant Building Design", Technologies: []string{"STAAD Pro", "Structural Analysis", "CAD"}},
		},
		summary: "Motivated %s Civil Engineering student with knowledge in structural design, construction management, and smart city planning. " +
			"Skilled in modern design software and project management. Passionate about sustainable infrastructure development.",
		certifications: []string{"AutoCAD Civil 3D", "STAAD Pro", "Project Management Professional (PMP)", "GIS Fundamentals"},
		interests:      []string{"Sustainable Construction", "Smart Cities", "Infrastructure", "Project Management", "Green Building"},
	},
}

var profileAchievements = []string{
	"Dean's List for Academic Excellence",
	"Best Project Award in College Tech Fest",
	"Active contributor to open-source projects",
}

// KnownBranch reports whether the branch has its own tables. Other branches borrow Computer Science's.
func KnownBranch(branch string) bool {
	_, ok := branchTables[branch]

	return ok
}

func tableFor(branch string) *branchTable {
	if table, ok := branchTables[branch]; ok {
		return table
	}

	return branchTables[defaultBranch]
}

// GenerateMatchingProfile synthesises a sample candidate profile from the account fields.
// pick(n) must return an index in [0, n); it chooses the location.
func GenerateMatchingProfile(user *entity.User, pick func(n int) int) *entity.MatchingProfile {
	if user == nil {
		user = &entity.User{}
	}

	branch := or(user.Branch, defaultBranch)
	college := or(user.College, defaultCollege)
	year := or(user.Year, defaultYear)
	table := tableFor(branch)

	location := ProfileLocations[0]
	if pick != nil {
		if i := pick(len(ProfileLocations)); i >= 0 && i < len(ProfileLocations) {
			location = ProfileLocations[i]
		}
	}

	return &entity.MatchingProfile{
		Name:       or(user.Name, defaultStudentName),
		Location:   location,
		Headline:   year + " " + branch + " Student at " + college,
		Summary:    strings.Replace(table.summary, "%s", summaryYear(user.Year), 1),
		Skills:     firstN(table.skills, maxProfileSkills),
		Experience: experienceFor(branch, user.Year),
		Education: []*entity.ProfileEducation{
			{
				Institution: college,
				Degree:      "B.Tech in " + branch,
				Year:        year,
				Activities:  "Technical Society Member, Project Leader, Academic Excellence",
			},
		},
		Projects:       cloneProjects(table.projects),
		Certifications: firstN(table.certifications, maxCertifications),
		Interests:      firstN(table.interests, len(table.interests)),
		Languages:      []string{"English", "Hindi"},
		Achievements:   firstN(profileAchievements, len(profileAchievements)),
	}
}

func summaryYear(year string) string {
	if year == "" || year == defaultYear {
		return "final year"
	}

	return strings.ToLower(year)
}

// experienceFor gives final-year students the branch internship and everyone else the society entry.
// Only some branches have an internship; the rest borrow Computer Science's.
func experienceFor(branch, year string) []*entity.ProfileExperience {
	if year != defaultYear && year != "4th Year" {
		return []*entity.ProfileExperience{
			{
				Title:    "Technical Team Member",
				Company:  "College Technical Society",
				Duration: "6 months",
				Description: "Active member contributing to technical projects and organizing workshops. Gained hands-on experience in " +
					strings.ToLower(branch) + " concepts and teamwork.",
			},
		}
	}

	internship := branchTables[defaultBranch].internship
	if table, ok := branchTables[branch]; ok && table.internship != nil {
		internship = table.internship
	}
	clone := *internship

	return []*entity.ProfileExperience{&clone}
}

func cloneProjects(projects []*entity.ProfileProject) []*entity.ProfileProject {
	out := make([]*entity.ProfileProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, &entity.ProfileProject{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: firstN(p.Technologies, len(p.Technologies)),
		})
	}

	return out
}

func firstN(values []string, n int) []string {
	if n > len(values) {
		n = len(values)
	}

	return append([]string(nil), values[:n]...)
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
