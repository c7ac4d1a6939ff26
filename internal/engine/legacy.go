package engine

// DefaultTraits are the starting traits offered at character creation.
func DefaultTraits() []Trait {
	return []Trait{
		{Name: "Algorithm Ace", Description: "Algorithms +15 / Programming +5", ProgrammingBonus: 5, AlgorithmBonus: 15},
		{Name: "Debugging Expert", Description: "Debugging +15 / Stress -5", DebuggingBonus: 15, StressDelta: -5},
		{Name: "People Person", Description: "Communication +15 / Motivation +5", CommunicationBonus: 15, MotivationDelta: 5},
		{Name: "Full-Stack Engineer", Description: "Programming +10 / Debugging +10", ProgrammingBonus: 10, DebuggingBonus: 10},
		{Name: "Learning Machine", Description: "All skills +5 / Health -5", ProgrammingBonus: 5, AlgorithmBonus: 5, DebuggingBonus: 5, CommunicationBonus: 5, HealthDelta: -5},
		{Name: "Work-Life Balance", Description: "Health +10 / Stress -10", HealthDelta: 10, StressDelta: -10},
	}
}

// LegacyEvents is the built-in catalog used when no event file can be loaded.
// These events carry no IDs, tags or requirements, so every one is drawn at
// base weight and each is played at most once per cycle.
func LegacyEvents() []GameEvent {
	return []GameEvent{
		{
			Title:       "First Day",
			Description: "You just joined a new tech company, excited and nervous at the same time.",
			Options: []EventOption{
				{Text: "Introduce yourself to the team", EffectDescription: "You chat with your new colleagues and the mood relaxes. So do you.", CommunicationDelta: 5, StressDelta: -3},
				{Text: "Dive straight into the code", EffectDescription: "You bury yourself in the codebase and learn the project fast, though you feel a little tense.", ProgrammingDelta: 4, StressDelta: 2},
			},
		},
		{
			Title:       "First Project",
			Description: "Your manager hands you your first project. The deadline is tight.",
			Options: []EventOption{
				{Text: "Pull overtime to finish", EffectDescription: "You work through the nights and ship before the deadline. Your skills grow, your body complains.", ProgrammingDelta: 5, StressDelta: 8, HealthDelta: -5},
				{Text: "Ask for an extension", EffectDescription: "You negotiate more time, though some colleagues grumble about your drive.", CommunicationDelta: 4, MotivationDelta: -3},
			},
		},
		{
			Title:       "Code Review",
			Description: "Your code is up for team review and you want to make a good impression.",
			Options: []EventOption{
				{Text: "Self-review first", EffectDescription: "You test thoroughly beforehand and catch a few hidden bugs, at the cost of extra effort.", DebuggingDelta: 5, StressDelta: 2},
				{Text: "Ask a senior engineer", EffectDescription: "You ask for guidance and pick up a few programming tricks along the way.", CommunicationDelta: 4, ProgrammingDelta: 2},
			},
		},
		{
			Title:       "Tech Talk",
			Description: "The company runs a tech talk series and you are invited to present your project.",
			Options: []EventOption{
				{Text: "Polish the slides", EffectDescription: "The talk lands well and cements your reputation, but the preparation was stressful.", CommunicationDelta: 6, ProgrammingDelta: 3, StressDelta: 3},
				{Text: "Wing it", EffectDescription: "It is rough around the edges, but your enthusiasm is contagious.", CommunicationDelta: 3, MotivationDelta: 5},
				{Text: "Politely decline", EffectDescription: "You dodge the stage fright and miss a chance to shine.", StressDelta: -2, MotivationDelta: -3},
			},
		},
		{
			Title:       "Production Bug",
			Description: "A system you own breaks in production and the complaints keep coming.",
			Options: []EventOption{
				{Text: "Hotfix immediately", EffectDescription: "You patch it under enormous pressure. Your debugging jumps, your health takes a hit.", DebuggingDelta: 8, StressDelta: 10, HealthDelta: -5},
				{Text: "Find the root cause first", EffectDescription: "You trace the faulty logic and fix it properly, still under real pressure.", DebuggingDelta: 5, AlgorithmDelta: 3, StressDelta: 5},
			},
		},
		{
			Title:       "Stack Decision",
			Description: "The team needs to choose a new tech stack and you are asked to weigh in.",
			Options: []EventOption{
				{Text: "Research and recommend", EffectDescription: "You present a data-backed recommendation that shows both depth and clarity.", AlgorithmDelta: 4, CommunicationDelta: 5, ProgrammingDelta: 3},
				{Text: "Go with the mainstream", EffectDescription: "You pick the popular option. Nothing special, but nothing breaks.", ProgrammingDelta: 2, StressDelta: -2},
			},
		},
		{
			Title:       "Refactoring",
			Description: "The project is full of legacy code that needs refactoring, and time is short.",
			Options: []EventOption{
				{Text: "Refactor after hours", EffectDescription: "Several late nights later the core module is clean, and you are exhausted.", ProgrammingDelta: 7, DebuggingDelta: 4, StressDelta: 6, HealthDelta: -3},
				{Text: "Refactor incrementally", EffectDescription: "You clean up as you go. The code improves and the extra load nags at you.", ProgrammingDelta: 4, StressDelta: 2},
				{Text: "Leave it for now", EffectDescription: "The pressure drops, but you know the debt is piling up.", StressDelta: -3, MotivationDelta: -2},
			},
		},
		{
			Title:       "Interviewing",
			Description: "You are asked to run technical interviews for a new hire.",
			Options: []EventOption{
				{Text: "Design an algorithm question", EffectDescription: "Crafting a clever puzzle sharpens your own thinking and your interviewing.", AlgorithmDelta: 5, CommunicationDelta: 3},
				{Text: "Dig into project experience", EffectDescription: "A long conversation about real projects improves your communication and refreshes your knowledge.", CommunicationDelta: 6, ProgrammingDelta: 2},
			},
		},
		{
			Title:       "Performance Tuning",
			Description: "The system is getting slower and needs optimising.",
			Options: []EventOption{
				{Text: "Profile the bottleneck", EffectDescription: "Proper profiling reveals a deep bottleneck. Solving it is exhausting brain work.", AlgorithmDelta: 7, DebuggingDelta: 5, StressDelta: 4},
				{Text: "Apply quick wins", EffectDescription: "A few simple tricks help, without fixing the underlying problem.", ProgrammingDelta: 4, DebuggingDelta: 3, StressDelta: 2},
			},
		},
		{
			Title:       "New Framework",
			Description: "The company adopts a new framework and everyone has to learn it.",
			Options: []EventOption{
				{Text: "Study it properly", EffectDescription: "Systematic practice broadens your stack, at some cost in stress.", ProgrammingDelta: 6, AlgorithmDelta: 4, StressDelta: 3},
				{Text: "Learn on the job", EffectDescription: "You muddle through the task, and the debugging teaches you something.", ProgrammingDelta: 3, DebuggingDelta: 2},
			},
		},
		{
			Title:       "Team Conflict",
			Description: "The team disagrees on a technical approach and the atmosphere is tense.",
			Options: []EventOption{
				{Text: "Mediate", EffectDescription: "You step in and talk it through. It costs energy and earns respect.", CommunicationDelta: 8, StressDelta: 5, MotivationDelta: 3},
				{Text: "Stay neutral", EffectDescription: "You avoid the crossfire, but watching the team split drains you.", StressDelta: -2, MotivationDelta: -2},
			},
		},
		{
			Title:       "Annual Review",
			Description: "Performance review season is here and you need a self-assessment.",
			Options: []EventOption{
				{Text: "Prepare thoroughly", EffectDescription: "Your report makes your contributions obvious and earns a raise. Preparing it was hard work.", CommunicationDelta: 5, SalaryDelta: 2000, StressDelta: 3},
				{Text: "Keep it brief", EffectDescription: "A short report gets you a small raise and an easy week.", SalaryDelta: 1000, StressDelta: -2},
			},
		},
		{
			Title:       "Open Source",
			Description: "You find a bug in an open source project and consider sending a fix.",
			Options: []EventOption{
				{Text: "Open a pull request", EffectDescription: "The maintainers merge your fix and thank you publicly.", ProgrammingDelta: 5, DebuggingDelta: 4, MotivationDelta: 6},
				{Text: "Patch it locally", EffectDescription: "You fix it for yourself and skip the process.", DebuggingDelta: 3},
			},
		},
		{
			Title:       "Tech Debt",
			Description: "The project has accumulated a mountain of technical debt.",
			Options: []EventOption{
				{Text: "Draft a refactoring plan", EffectDescription: "You convince the team and lay out a plan, showing foresight and influence.", ProgrammingDelta: 5, AlgorithmDelta: 3, CommunicationDelta: 4},
				{Text: "Handle the urgent parts", EffectDescription: "You put out the worst fires; the debt remains and so does the worry.", DebuggingDelta: 4, StressDelta: 3},
			},
		},
		{
			Title:       "Cross-Team Project",
			Description: "A large project needs several departments to work together.",
			Options: []EventOption{
				{Text: "Own the coordination", EffectDescription: "You become the bridge between teams and the project runs smoothly.", CommunicationDelta: 7, ProgrammingDelta: 3, MotivationDelta: 4},
				{Text: "Do your part only", EffectDescription: "Passive cooperation slows everyone down, you included.", CommunicationDelta: 2, StressDelta: 3},
			},
		},
		{
			Title:       "Tech Blog",
			Description: "You consider writing a blog post about what you have learned.",
			Options: []EventOption{
				{Text: "Write it properly", EffectDescription: "A well-researched post raises your profile and organises your own thinking.", CommunicationDelta: 6, ProgrammingDelta: 4, MotivationDelta: 5},
				{Text: "Jot down notes", EffectDescription: "A short write-up. Modest, but it adds up.", CommunicationDelta: 2, ProgrammingDelta: 2},
			},
		},
		{
			Title:       "Reviewing a Colleague",
			Description: "You need to review a colleague's pull request.",
			Options: []EventOption{
				{Text: "Review carefully", EffectDescription: "You spot a couple of logic flaws and suggest clean fixes. The team appreciates it.", DebuggingDelta: 5, CommunicationDelta: 4, StressDelta: 2},
				{Text: "Rubber-stamp it", EffectDescription: "You approve quickly and feel a little uneasy about it.", StressDelta: -2, MotivationDelta: -2},
			},
		},
		{
			Title:       "Tech Conference",
			Description: "The company sends you to a tech conference.",
			Options: []EventOption{
				{Text: "Network and learn", EffectDescription: "You trade ideas with experts and come back energised.", ProgrammingDelta: 5, AlgorithmDelta: 5, CommunicationDelta: 6, MotivationDelta: 5},
				{Text: "Catch a few talks", EffectDescription: "You listen to a few sessions and learn a little.", ProgrammingDelta: 2, AlgorithmDelta: 2},
			},
		},
		{
			Title:       "Launch Day",
			Description: "The project you own is about to go live.",
			Options: []EventOption{
				{Text: "Stay up all night", EffectDescription: "You babysit the launch until dawn. A bonus arrives, and so does the exhaustion.", DebuggingDelta: 6, StressDelta: 8, HealthDelta: -5, SalaryDelta: 1500},
				{Text: "Prepare a rollback plan", EffectDescription: "Careful preparation keeps launch night calm.", DebuggingDelta: 4, ProgrammingDelta: 3, StressDelta: 3},
			},
		},
		{
			Title:       "Career Planning",
			Description: "You start thinking about where your career is heading.",
			Options: []EventOption{
				{Text: "Go deep on tech", EffectDescription: "You commit to becoming a domain expert and sharpen your core skills.", AlgorithmDelta: 6, ProgrammingDelta: 5, MotivationDelta: 4},
				{Text: "Move toward management", EffectDescription: "You study leadership and feel hopeful about what comes next.", CommunicationDelta: 8, MotivationDelta: 3},
				{Text: "Stay the course", EffectDescription: "You are content where you are and the pressure eases.", StressDelta: -3},
			},
		},
		{
			Title:       "Burnout Creeping In",
			Description: "Back-to-back overtime has worn you down and your output is slipping.",
			Options: []EventOption{
				{Text: "Take time off", EffectDescription: "You take a proper break and find your spark again.", HealthDelta: 10, StressDelta: -8, MotivationDelta: 5},
				{Text: "Push through", EffectDescription: "The work gets done, and your body and mind get worse.", HealthDelta: -5, StressDelta: 5, MotivationDelta: -3},
			},
		},
		{
			Title:       "Skill Building",
			Description: "You decide to invest time in levelling up.",
			Options: []EventOption{
				{Text: "Study algorithms", EffectDescription: "A weekend of hard problems leaves you feeling reborn.", AlgorithmDelta: 8, StressDelta: 3},
				{Text: "Learn a new framework", EffectDescription: "You pick up the latest frontend framework and your velocity jumps.", ProgrammingDelta: 6, DebuggingDelta: 3},
				{Text: "Practise public speaking", EffectDescription: "A speaking course pays off and the team mood brightens.", CommunicationDelta: 7, MotivationDelta: 4},
			},
		},
	}
}
