package memory

import "github.com/SAP-F-2025/course-catalog-service/internal/models"

func lesson(id, title, duration string, kind models.LessonType) models.Lesson {
	return models.Lesson{ID: id, Title: title, Duration: duration, Type: kind}
}

func video(id, title, duration string) models.Lesson {
	return lesson(id, title, duration, models.LessonVideo)
}

func quiz(id, title, duration string) models.Lesson {
	return lesson(id, title, duration, models.LessonQuiz)
}

func assignment(id, title, duration string) models.Lesson {
	return lesson(id, title, duration, models.LessonAssignment)
}

func preview(l models.Lesson) models.Lesson {
	l.Preview = true
	return l
}

func done(l models.Lesson) models.Lesson {
	l.Completed = true
	return l
}

func section(title string, lessons ...models.Lesson) models.CurriculumSection {
	return models.CurriculumSection{Title: title, Lessons: lessons}
}

func discount(v float64) *float64 {
	return &v
}

var seedInstructors = []models.Instructor{
	{
		ID:     "1",
		Name:   "Alex Johnson",
		Title:  "Senior Web Developer",
		Avatar: "/placeholder.svg?height=64&width=64",
		Bio:    "Alex has over 10 years of experience in web development and has worked with companies like Google and Facebook.",
	},
	{
		ID:     "2",
		Name:   "Sarah Williams",
		Title:  "UX/UI Designer",
		Avatar: "/placeholder.svg?height=64&width=64",
		Bio:    "Sarah is a UX/UI designer with a passion for creating beautiful and functional user interfaces.",
	},
	{
		ID:     "3",
		Name:   "Dr. Michael Chen",
		Title:  "Data Scientist",
		Avatar: "/placeholder.svg?height=64&width=64",
		Bio:    "Dr. Chen has a PhD in Computer Science and specializes in machine learning and data analysis.",
	},
	{
		ID:     "4",
		Name:   "Emily Rodriguez",
		Title:  "Mobile Developer",
		Avatar: "/placeholder.svg?height=64&width=64",
		Bio:    "Emily is an expert in mobile app development with React Native and Flutter.",
	},
	{
		ID:     "5",
		Name:   "David Kim",
		Title:  "Full Stack Developer",
		Avatar: "/placeholder.svg?height=64&width=64",
		Bio:    "David is a full stack developer with expertise in React, Node.js, and MongoDB.",
	},
}

var seedCategories = []models.Category{
	models.NewCategory("1", "Web Development", 42),
	models.NewCategory("2", "Mobile Development", 28),
	models.NewCategory("3", "Data Science", 36),
	models.NewCategory("4", "Design", 24),
	models.NewCategory("5", "Marketing", 18),
	models.NewCategory("6", "Business", 22),
	models.NewCategory("7", "IT & Software", 31),
	models.NewCategory("8", "Personal Development", 15),
}

// seedCourse pairs a course literal with the number of reviews generated for it.
type seedCourse struct {
	course  models.Course
	reviews int
}

func seedCourses() []seedCourse {
	return []seedCourse{
		{reviews: 8, course: models.Course{
			ID:               "1",
			Title:            "Web Development Masterclass",
			Slug:             "web-development-masterclass",
			Description:      "Learn modern web development from scratch with this comprehensive course covering HTML, CSS, JavaScript, React, and Node.js. You'll build real-world projects and gain the skills needed to become a professional web developer.",
			ShortDescription: "Learn modern web development from scratch",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=Web+Development",
			Instructor:       seedInstructors[0],
			Rating:           4.8,
			ReviewCount:      1245,
			Students:         12453,
			Duration:         "24 hours",
			Lessons:          42,
			Level:            "All Levels",
			LastUpdated:      "March 2025",
			Price:            89.99,
			DiscountPrice:    discount(49.99),
			Tags:             []string{"Web Development", "JavaScript", "React", "Node.js"},
			Category:         "Web Development",
			Featured:         true,
			Popular:          true,
			WhatYouWillLearn: []string{
				"Build responsive websites using HTML5, CSS3, and JavaScript",
				"Create dynamic web applications with React",
				"Develop backend APIs with Node.js and Express",
				"Connect to databases and implement CRUD operations",
				"Deploy your applications to production environments",
				"Implement authentication and authorization",
			},
			Requirements: []string{
				"Basic computer skills and familiarity with using the internet",
				"No prior programming experience required - we'll start from the basics",
				"A computer with internet access (Windows, Mac, or Linux)",
				"Enthusiasm and willingness to learn!",
			},
			Curriculum: []models.CurriculumSection{
				section("Introduction to Web Development",
					done(preview(video("1-1", "Course Overview", "5:22"))),
					done(video("1-2", "Setting Up Your Development Environment", "12:45")),
					done(video("1-3", "Web Development Basics", "18:30")),
					done(quiz("1-4", "Introduction Quiz", "10 questions")),
				),
				section("HTML Fundamentals",
					done(video("2-1", "HTML Document Structure", "14:18")),
					done(video("2-2", "Working with Text Elements", "16:24")),
					video("2-3", "HTML Forms and Input Elements", "22:15"),
					assignment("2-4", "HTML Practice Assignment", "1 hour"),
				),
				section("CSS Styling",
					video("3-1", "CSS Selectors and Properties", "20:12"),
					video("3-2", "Box Model and Layout", "18:45"),
					video("3-3", "Flexbox and Grid Layout", "25:30"),
					video("3-4", "Responsive Design Principles", "22:18"),
					quiz("3-5", "CSS Challenge", "15 questions"),
				),
				section("JavaScript Essentials",
					video("4-1", "JavaScript Syntax and Variables", "19:42"),
					video("4-2", "Functions and Control Flow", "24:15"),
					video("4-3", "Working with Arrays and Objects", "28:33"),
					video("4-4", "DOM Manipulation", "32:20"),
					assignment("4-5", "JavaScript Project", "2 hours"),
				),
			},
		}},
		{reviews: 10, course: models.Course{
			ID:               "2",
			Title:            "React.js - The Complete Guide",
			Slug:             "react-js-complete-guide",
			Description:      "Master React.js from the ground up! Learn hooks, context API, Redux, routing, and more as you build real-world applications with the most popular JavaScript library for building user interfaces.",
			ShortDescription: "Master modern React.js from beginner to advanced",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=React.js",
			Instructor:       seedInstructors[4],
			Rating:           4.9,
			ReviewCount:      2156,
			Students:         18742,
			Duration:         "28 hours",
			Lessons:          48,
			Level:            "Intermediate",
			LastUpdated:      "February 2025",
			Price:            94.99,
			DiscountPrice:    discount(54.99),
			Tags:             []string{"Web Development", "JavaScript", "React", "Frontend"},
			Category:         "Web Development",
			Featured:         true,
			Popular:          true,
			WhatYouWillLearn: []string{
				"Build powerful, fast, user-friendly and reactive web apps",
				"Apply for high-paid jobs or work as a freelancer in one of the most in-demand sectors",
				"Understand the React ecosystem and build standalone applications",
				"Learn all about React Hooks and React Components",
				"Manage complex state efficiently with the Context API and Redux",
				"Build a portfolio of projects to apply for developer jobs",
			},
			Requirements: []string{
				"JavaScript + HTML + CSS fundamentals are absolutely required",
				"You DON'T need to be a JavaScript expert to succeed in this course!",
				"ES6+ JavaScript knowledge is beneficial but not required",
			},
			Curriculum: []models.CurriculumSection{
				section("Getting Started",
					preview(video("1-1", "Introduction", "3:45")),
					video("1-2", "What is React?", "8:22"),
					video("1-3", "Setting Up the Development Environment", "15:10"),
					video("1-4", "Creating Your First React App", "12:35"),
				),
				section("React Basics",
					video("2-1", "Components & JSX", "18:42"),
					video("2-2", "Props & State", "22:15"),
					video("2-3", "Handling Events", "14:30"),
					video("2-4", "Conditional Rendering", "16:18"),
					quiz("2-5", "Basic React Quiz", "10 questions"),
				),
				section("React Hooks",
					video("3-1", "Introduction to Hooks", "10:25"),
					video("3-2", "useState Hook", "24:18"),
					video("3-3", "useEffect Hook", "28:45"),
					video("3-4", "useContext Hook", "22:30"),
					video("3-5", "Custom Hooks", "26:15"),
					assignment("3-6", "Hooks Project", "1.5 hours"),
				),
			},
		}},
		{reviews: 7, course: models.Course{
			ID:               "3",
			Title:            "Node.js API Masterclass",
			Slug:             "nodejs-api-masterclass",
			Description:      "Build an extensive RESTful API from scratch using Node.js, Express, MongoDB, and more. Learn authentication, authorization, error handling, and best practices for building robust backend services.",
			ShortDescription: "Build production-ready REST APIs with Node.js",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=Node.js+API",
			Instructor:       seedInstructors[0],
			Rating:           4.7,
			ReviewCount:      856,
			Students:         9245,
			Duration:         "20 hours",
			Lessons:          38,
			Level:            "Intermediate",
			LastUpdated:      "January 2025",
			Price:            84.99,
			DiscountPrice:    discount(44.99),
			Tags:             []string{"Web Development", "Node.js", "API", "Backend", "MongoDB"},
			Category:         "Web Development",
			Popular:          true,
			WhatYouWillLearn: []string{
				"Build a real-world backend REST API with Node.js, Express, and MongoDB",
				"Implement authentication with JWT (JSON Web Tokens)",
				"Create custom middleware and error handling",
				"Use modern async/await syntax with Express",
				"Implement advanced MongoDB queries and aggregations",
				"Deploy your API to production environments",
			},
			Requirements: []string{
				"JavaScript fundamentals",
				"Basic understanding of HTTP and REST concepts",
				"No Node.js or MongoDB experience required",
			},
			Curriculum: []models.CurriculumSection{
				section("Introduction to Node.js",
					preview(video("1-1", "What is Node.js?", "8:15")),
					video("1-2", "Setting Up Your Environment", "12:30"),
					video("1-3", "Node.js Modules System", "18:45"),
					video("1-4", "Asynchronous Programming in Node.js", "25:10"),
				),
				section("Express Framework",
					video("2-1", "Introduction to Express", "14:22"),
					video("2-2", "Routing in Express", "20:15"),
					video("2-3", "Middleware", "18:30"),
					video("2-4", "Error Handling", "16:45"),
					quiz("2-5", "Express Quiz", "10 questions"),
				),
				section("MongoDB & Mongoose",
					video("3-1", "Introduction to MongoDB", "12:18"),
					video("3-2", "Setting Up MongoDB Atlas", "15:45"),
					video("3-3", "Mongoose ODM", "22:30"),
					video("3-4", "CRUD Operations", "28:15"),
					video("3-5", "Advanced Queries", "24:40"),
					assignment("3-6", "MongoDB Project", "2 hours"),
				),
			},
		}},
		{reviews: 8, course: models.Course{
			ID:               "4",
			Title:            "React Native - Mobile App Development",
			Slug:             "react-native-mobile-app-development",
			Description:      "Learn to build native mobile apps for both iOS and Android using React Native. This course covers everything from the basics to advanced topics like navigation, state management, and native modules.",
			ShortDescription: "Build cross-platform mobile apps with React Native",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=React+Native",
			Instructor:       seedInstructors[3],
			Rating:           4.8,
			ReviewCount:      1024,
			Students:         8756,
			Duration:         "26 hours",
			Lessons:          45,
			Level:            "Intermediate",
			LastUpdated:      "February 2025",
			Price:            89.99,
			DiscountPrice:    discount(49.99),
			Tags:             []string{"Mobile Development", "React Native", "iOS", "Android"},
			Category:         "Mobile Development",
			Featured:         true,
			New:              true,
			WhatYouWillLearn: []string{
				"Build native mobile apps using JavaScript and React",
				"Create cross-platform (iOS and Android) applications with a single codebase",
				"Implement navigation, state management, and data persistence",
				"Connect to REST APIs and handle authentication",
				"Use native device features like camera and geolocation",
				"Deploy your apps to the App Store and Google Play",
			},
			Requirements: []string{
				"JavaScript fundamentals",
				"Basic React knowledge is recommended but not required",
				"No prior mobile development experience needed",
			},
			Curriculum: []models.CurriculumSection{
				section("Getting Started with React Native",
					preview(video("1-1", "Introduction to React Native", "10:15")),
					video("1-2", "Setting Up Your Development Environment", "18:30"),
					video("1-3", "Creating Your First React Native App", "22:45"),
					video("1-4", "Understanding the Project Structure", "15:10"),
				),
				section("Core Components and APIs",
					video("2-1", "Core Components Overview", "16:22"),
					video("2-2", "Styling in React Native", "24:15"),
					video("2-3", "Handling User Input", "20:30"),
					video("2-4", "Lists and ScrollView", "18:45"),
					quiz("2-5", "Core Components Quiz", "10 questions"),
				),
				section("Navigation and Routing",
					video("3-1", "Introduction to React Navigation", "14:18"),
					video("3-2", "Stack Navigation", "22:45"),
					video("3-3", "Tab Navigation", "20:30"),
					video("3-4", "Drawer Navigation", "18:15"),
					video("3-5", "Navigation Parameters", "16:40"),
					assignment("3-6", "Navigation Project", "1.5 hours"),
				),
			},
		}},
		{reviews: 9, course: models.Course{
			ID:               "5",
			Title:            "Flutter & Dart - The Complete Guide",
			Slug:             "flutter-dart-complete-guide",
			Description:      "Learn Flutter and Dart from the ground up to build beautiful, fast, and native-quality apps for iOS and Android. This course covers UI design, state management, Firebase integration, and more.",
			ShortDescription: "Build beautiful native apps with Flutter",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=Flutter",
			Instructor:       seedInstructors[3],
			Rating:           4.9,
			ReviewCount:      1542,
			Students:         12345,
			Duration:         "30 hours",
			Lessons:          52,
			Level:            "All Levels",
			LastUpdated:      "March 2025",
			Price:            94.99,
			DiscountPrice:    discount(54.99),
			Tags:             []string{"Mobile Development", "Flutter", "Dart", "iOS", "Android"},
			Category:         "Mobile Development",
			Popular:          true,
			New:              true,
			WhatYouWillLearn: []string{
				"Build engaging native mobile apps for iOS and Android",
				"Learn Dart programming from scratch",
				"Understand Flutter widgets and how to create custom UIs",
				"Implement state management with Provider and Riverpod",
				"Connect to Firebase for authentication and data storage",
				"Publish your apps to the App Store and Google Play",
			},
			Requirements: []string{
				"No prior mobile development experience required",
				"No Dart or Flutter knowledge needed - we'll start from the basics",
				"Basic programming knowledge in any language is helpful but not required",
			},
			Curriculum: []models.CurriculumSection{
				section("Introduction to Flutter & Dart",
					preview(video("1-1", "What is Flutter?", "8:15")),
					video("1-2", "Setting Up the Development Environment", "20:30"),
					video("1-3", "Dart Basics", "25:45"),
					video("1-4", "Creating Your First Flutter App", "18:10"),
				),
				section("Flutter Fundamentals",
					video("2-1", "Understanding Widgets", "22:22"),
					video("2-2", "Layouts and UI Design", "28:15"),
					video("2-3", "Handling User Input", "20:30"),
					video("2-4", "Navigation and Routing", "24:45"),
					quiz("2-5", "Flutter Fundamentals Quiz", "15 questions"),
				),
				section("State Management",
					video("3-1", "Local State Management", "18:18"),
					video("3-2", "Provider Package", "26:45"),
					video("3-3", "Riverpod Introduction", "24:30"),
					video("3-4", "State Management Patterns", "22:15"),
					assignment("3-5", "State Management Project", "2 hours"),
				),
			},
		}},
		{reviews: 12, course: models.Course{
			ID:               "6",
			Title:            "Data Science and Machine Learning Bootcamp",
			Slug:             "data-science-machine-learning-bootcamp",
			Description:      "Master Data Science and Machine Learning with Python. This comprehensive course covers data analysis, visualization, machine learning algorithms, deep learning, and real-world projects.",
			ShortDescription: "Master Data Science and ML with Python",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=Data+Science",
			Instructor:       seedInstructors[2],
			Rating:           4.8,
			ReviewCount:      2156,
			Students:         18742,
			Duration:         "42 hours",
			Lessons:          65,
			Level:            "Intermediate",
			LastUpdated:      "January 2025",
			Price:            99.99,
			DiscountPrice:    discount(59.99),
			Tags:             []string{"Data Science", "Machine Learning", "Python", "AI"},
			Category:         "Data Science",
			Featured:         true,
			Popular:          true,
			WhatYouWillLearn: []string{
				"Master the Python programming language for data science",
				"Use NumPy, Pandas, Matplotlib, and Seaborn for data analysis and visualization",
				"Implement machine learning algorithms with Scikit-Learn",
				"Build neural networks with TensorFlow and Keras",
				"Work with real-world datasets and solve practical problems",
				"Deploy machine learning models to production",
			},
			Requirements: []string{
				"Basic Python knowledge is recommended but not required",
				"No prior data science or machine learning experience needed",
				"A computer with internet access (Windows, Mac, or Linux)",
			},
			Curriculum: []models.CurriculumSection{
				section("Python for Data Science",
					preview(video("1-1", "Python Basics Review", "15:15")),
					video("1-2", "NumPy Arrays", "22:30"),
					video("1-3", "Pandas Fundamentals", "28:45"),
					video("1-4", "Data Manipulation with Pandas", "32:10"),
					quiz("1-5", "Python for Data Science Quiz", "15 questions"),
				),
				section("Data Visualization",
					video("2-1", "Matplotlib Basics", "24:22"),
					video("2-2", "Advanced Matplotlib", "26:15"),
					video("2-3", "Seaborn Library", "28:30"),
					video("2-4", "Interactive Visualizations", "30:45"),
					assignment("2-5", "Data Visualization Project", "2 hours"),
				),
				section("Machine Learning",
					video("3-1", "Introduction to Machine Learning", "18:18"),
					video("3-2", "Supervised Learning Algorithms", "34:45"),
					video("3-3", "Unsupervised Learning", "32:30"),
					video("3-4", "Model Evaluation and Validation", "28:15"),
					video("3-5", "Feature Engineering", "26:40"),
					assignment("3-6", "Machine Learning Project", "3 hours"),
				),
				section("Deep Learning",
					video("4-1", "Neural Networks Fundamentals", "30:18"),
					video("4-2", "TensorFlow and Keras", "36:45"),
					video("4-3", "Convolutional Neural Networks", "38:30"),
					video("4-4", "Recurrent Neural Networks", "34:15"),
					assignment("4-5", "Deep Learning Project", "4 hours"),
				),
			},
		}},
		{reviews: 8, course: models.Course{
			ID:               "7",
			Title:            "Python for Data Analysis and Visualization",
			Slug:             "python-data-analysis-visualization",
			Description:      "Learn how to use Python for data analysis, manipulation, and visualization. This course focuses on practical skills using NumPy, Pandas, Matplotlib, and Seaborn to extract insights from data.",
			ShortDescription: "Master data analysis with Python libraries",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=Python+Data",
			Instructor:       seedInstructors[2],
			Rating:           4.7,
			ReviewCount:      1245,
			Students:         10568,
			Duration:         "28 hours",
			Lessons:          48,
			Level:            "Beginner to Intermediate",
			LastUpdated:      "February 2025",
			Price:            84.99,
			DiscountPrice:    discount(44.99),
			Tags:             []string{"Data Science", "Python", "Data Analysis", "Visualization"},
			Category:         "Data Science",
			Popular:          true,
			WhatYouWillLearn: []string{
				"Master Python libraries for data analysis: NumPy and Pandas",
				"Create stunning visualizations with Matplotlib and Seaborn",
				"Clean and preprocess real-world datasets",
				"Perform exploratory data analysis (EDA)",
				"Extract meaningful insights from complex data",
				"Build a portfolio of data analysis projects",
			},
			Requirements: []string{
				"Basic Python knowledge",
				"No prior data analysis experience required",
				"A computer with internet access",
			},
			Curriculum: []models.CurriculumSection{
				section("Introduction to Data Analysis",
					preview(video("1-1", "What is Data Analysis?", "10:15")),
					video("1-2", "Setting Up Your Environment", "15:30"),
					video("1-3", "Python Review for Data Analysis", "22:45"),
					video("1-4", "Introduction to Jupyter Notebooks", "18:10"),
				),
				section("NumPy Fundamentals",
					video("2-1", "Introduction to NumPy", "16:22"),
					video("2-2", "NumPy Arrays and Vectorization", "24:15"),
					video("2-3", "Array Indexing and Selection", "20:30"),
					video("2-4", "NumPy Operations", "22:45"),
					quiz("2-5", "NumPy Quiz", "10 questions"),
				),
				section("Pandas for Data Analysis",
					video("3-1", "Introduction to Pandas", "18:18"),
					video("3-2", "Series and DataFrames", "26:45"),
					video("3-3", "Data Cleaning and Preprocessing", "32:30"),
					video("3-4", "Data Aggregation and Grouping", "28:15"),
					video("3-5", "Working with Time Series Data", "24:40"),
					assignment("3-6", "Pandas Project", "2 hours"),
				),
			},
		}},
		{reviews: 10, course: models.Course{
			ID:               "8",
			Title:            "UI/UX Design Masterclass",
			Slug:             "ui-ux-design-masterclass",
			Description:      "Learn the complete UI/UX design process from research to final deliverables. This course covers user research, wireframing, prototyping, visual design, and usability testing with industry-standard tools.",
			ShortDescription: "Master the complete UI/UX design process",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=UI/UX+Design",
			Instructor:       seedInstructors[1],
			Rating:           4.9,
			ReviewCount:      1856,
			Students:         15423,
			Duration:         "32 hours",
			Lessons:          56,
			Level:            "All Levels",
			LastUpdated:      "March 2025",
			Price:            94.99,
			DiscountPrice:    discount(54.99),
			Tags:             []string{"Design", "UI/UX", "Figma", "User Research"},
			Category:         "Design",
			Featured:         true,
			Popular:          true,
			WhatYouWillLearn: []string{
				"Master the end-to-end UI/UX design process",
				"Conduct effective user research and create user personas",
				"Create wireframes, mockups, and interactive prototypes",
				"Design beautiful and functional user interfaces",
				"Perform usability testing and iterate on your designs",
				"Build a professional UI/UX design portfolio",
			},
			Requirements: []string{
				"No prior design experience required",
				"A computer with internet access",
				"Figma (free account) will be used for design work",
			},
			Curriculum: []models.CurriculumSection{
				section("Introduction to UI/UX Design",
					preview(video("1-1", "What is UI/UX Design?", "12:15")),
					video("1-2", "The Design Process Overview", "18:30"),
					video("1-3", "UI vs UX: Understanding the Difference", "15:45"),
					video("1-4", "Setting Up Figma", "14:10"),
				),
				section("User Research and Analysis",
					video("2-1", "User Research Methods", "22:22"),
					video("2-2", "Creating User Personas", "26:15"),
					video("2-3", "User Journey Mapping", "24:30"),
					video("2-4", "Competitive Analysis", "20:45"),
					assignment("2-5", "User Research Project", "2 hours"),
				),
				section("Wireframing and Prototyping",
					video("3-1", "Introduction to Wireframing", "18:18"),
					video("3-2", "Low-Fidelity Wireframes", "24:45"),
					video("3-3", "High-Fidelity Wireframes", "28:30"),
					video("3-4", "Interactive Prototyping with Figma", "32:15"),
					quiz("3-5", "Wireframing and Prototyping Quiz", "15 questions"),
				),
				section("Visual Design",
					video("4-1", "Design Principles", "20:18"),
					video("4-2", "Color Theory for UI Design", "26:45"),
					video("4-3", "Typography in UI Design", "22:30"),
					video("4-4", "Creating a Design System", "34:15"),
					assignment("4-5", "Visual Design Project", "3 hours"),
				),
			},
		}},
		{reviews: 8, course: models.Course{
			ID:               "9",
			Title:            "Digital Marketing Fundamentals",
			Slug:             "digital-marketing-fundamentals",
			Description:      "Master the essentials of digital marketing including SEO, social media, email marketing, content marketing, and paid advertising. Learn how to create effective marketing strategies and measure their success.",
			ShortDescription: "Learn essential digital marketing skills",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=Digital+Marketing",
			Instructor: models.Instructor{
				ID:     "6",
				Name:   "Jessica Thompson",
				Title:  "Digital Marketing Specialist",
				Avatar: "/placeholder.svg?height=64&width=64",
				Bio:    "Jessica has over 8 years of experience in digital marketing and has worked with Fortune 500 companies.",
			},
			Rating:        4.7,
			ReviewCount:   1245,
			Students:      14568,
			Duration:      "24 hours",
			Lessons:       42,
			Level:         "Beginner",
			LastUpdated:   "January 2025",
			Price:         84.99,
			DiscountPrice: discount(44.99),
			Tags:          []string{"Marketing", "Digital Marketing", "SEO", "Social Media"},
			Category:      "Marketing",
			Popular:       true,
			WhatYouWillLearn: []string{
				"Understand the fundamentals of digital marketing",
				"Create effective SEO strategies to improve website visibility",
				"Develop social media marketing campaigns",
				"Implement email marketing strategies",
				"Create content marketing plans",
				"Set up and optimize paid advertising campaigns",
			},
			Requirements: []string{
				"No prior marketing experience required",
				"A computer with internet access",
				"Enthusiasm and willingness to learn",
			},
			Curriculum: []models.CurriculumSection{
				section("Introduction to Digital Marketing",
					preview(video("1-1", "What is Digital Marketing?", "10:15")),
					video("1-2", "The Digital Marketing Landscape", "15:30"),
					video("1-3", "Creating a Digital Marketing Strategy", "22:45"),
					quiz("1-4", "Introduction Quiz", "10 questions"),
				),
				section("Search Engine Optimization (SEO)",
					video("2-1", "SEO Fundamentals", "18:22"),
					video("2-2", "On-Page SEO", "24:15"),
					video("2-3", "Off-Page SEO", "20:30"),
					video("2-4", "Technical SEO", "22:45"),
					assignment("2-5", "SEO Project", "2 hours"),
				),
				section("Social Media Marketing",
					video("3-1", "Social Media Strategy", "16:18"),
					video("3-2", "Facebook Marketing", "22:45"),
					video("3-3", "Instagram Marketing", "20:30"),
					video("3-4", "Twitter Marketing", "18:15"),
					video("3-5", "LinkedIn Marketing", "20:40"),
					quiz("3-6", "Social Media Quiz", "15 questions"),
				),
			},
		}},
		{reviews: 12, course: models.Course{
			ID:               "10",
			Title:            "CompTIA A+ Certification Prep",
			Slug:             "comptia-a-plus-certification-prep",
			Description:      "Prepare for the CompTIA A+ certification exam with this comprehensive course. Learn about hardware, operating systems, software troubleshooting, networking, and security fundamentals.",
			ShortDescription: "Complete preparation for CompTIA A+ certification",
			Thumbnail:        "/placeholder.svg?height=400&width=600&text=CompTIA+A+",
			Instructor: models.Instructor{
				ID:     "7",
				Name:   "Robert Wilson",
				Title:  "IT Specialist & Certified Trainer",
				Avatar: "/placeholder.svg?height=64&width=64",
				Bio:    "Robert is a certified IT trainer with over 15 years of experience in the field.",
			},
			Rating:        4.8,
			ReviewCount:   2156,
			Students:      18742,
			Duration:      "40 hours",
			Lessons:       75,
			Level:         "Beginner to Intermediate",
			LastUpdated:   "February 2025",
			Price:         99.99,
			DiscountPrice: discount(59.99),
			Tags:          []string{"IT & Software", "CompTIA", "Certification", "Hardware", "Networking"},
			Category:      "IT & Software",
			Featured:      true,
			Popular:       true,
			WhatYouWillLearn: []string{
				"Understand computer hardware components and their functions",
				"Install and configure operating systems",
				"Troubleshoot common hardware and software issues",
				"Set up and manage networks",
				"Implement security best practices",
				"Pass the CompTIA A+ certification exam",
			},
			Requirements: []string{
				"No prior IT experience required",
				"A computer with internet access",
				"Interest in information technology",
			},
			Curriculum: []models.CurriculumSection{
				section("Hardware Fundamentals",
					preview(video("1-1", "Introduction to Computer Hardware", "15:15")),
					video("1-2", "Motherboards and CPUs", "22:30"),
					video("1-3", "RAM and Storage Devices", "20:45"),
					video("1-4", "Input and Output Devices", "18:10"),
					quiz("1-5", "Hardware Quiz", "15 questions"),
				),
				section("Operating Systems",
					video("2-1", "Windows Installation and Configuration", "24:22"),
					video("2-2", "macOS Basics", "20:15"),
					video("2-3", "Linux Fundamentals", "22:30"),
					video("2-4", "Operating System Troubleshooting", "26:45"),
					assignment("2-5", "OS Lab", "2 hours"),
				),
				section("Networking",
					video("3-1", "Networking Concepts", "18:18"),
					video("3-2", "Network Hardware", "22:45"),
					video("3-3", "TCP/IP and Subnetting", "28:30"),
					video("3-4", "Wireless Networking", "24:15"),
					video("3-5", "Network Troubleshooting", "26:40"),
					quiz("3-6", "Networking Quiz", "20 questions"),
				),
			},
		}},
	}
}
