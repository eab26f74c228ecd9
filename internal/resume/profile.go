package resume

// Default is the profile served by the site.
func Default() Profile {
	return Profile{
		Name:     "Ruturaj Gawade",
		Headline: "an Automation & Control Engineer",
		Bio: `Automation and controls engineer who spends most days between PLC racks, SCADA
	screens and commissioning checklists. Happiest when a line that refused to start
	in the morning is running to spec by the evening shift.`,
		About: `I design, program and commission control systems for process and packaging
	plants. My work spans ladder and structured-text PLC programming, HMI and SCADA
	development, instrument loop checks and site acceptance testing. Outside the
	plant I tinker with industrial networking labs and small Go tools that make
	commissioning paperwork less painful.`,
		Titles: []string{"PLC Programmer", "SCADA Specialist", "Commissioning Engineer"},
		Skills: []SkillGroup{
			{Name: "PLC", Items: []string{"Siemens TIA Portal", "Allen-Bradley Studio 5000", "Structured Text", "Ladder Logic"}},
			{Name: "SCADA & HMI", Items: []string{"WinCC", "FactoryTalk View", "Ignition"}},
			{Name: "Networks", Items: []string{"PROFINET", "EtherNet/IP", "Modbus TCP", "OPC UA"}},
			{Name: "Commissioning", Items: []string{"Loop checks", "FAT/SAT", "I/O verification", "Cause & effect testing"}},
		},
		Experience: []Job{
			{
				Role:     "Commissioning Engineer",
				Company:  "Process Automation Integrator",
				Period:   "2022 - Present",
				LogoPath: "images/integrator-logo.png",
				Highlights: []string{
					"Commissioned PLC and SCADA systems for water treatment and food processing lines",
					"Led site acceptance tests with clients and cut punch-list closure time by a third",
					"Standardised PLC function blocks for valves, motors and analog scaling across projects",
				},
			},
			{
				Role:     "PLC Programmer",
				Company:  "Packaging Machinery Builder",
				Period:   "2019 - 2022",
				LogoPath: "images/oem-logo.png",
				Highlights: []string{
					"Programmed servo-driven packaging machines using motion control and safety PLCs",
					"Built HMI screens with alarm management and recipe handling",
					"Supported remote diagnostics and on-site troubleshooting for installed machines",
				},
			},
		},
		Projects: []Project{
			{
				Title:   "Water Treatment Plant SCADA Upgrade",
				Summary: "Migrated a legacy relay-and-panel plant to a redundant PLC and SCADA system without unplanned downtime.",
				Sections: []Section{
					{
						Heading:    "Scope",
						Paragraphs: []string{"Replaced obsolete controllers and hardwired panels with a redundant PLC pair and a new SCADA server."},
						Items:      []string{"850 I/O points", "12 pump stations over radio telemetry", "Historian and alarm reporting"},
					},
					{
						Heading:    "Outcome",
						Paragraphs: []string{"Cut-over was staged station by station over six weekends; operators kept manual control throughout."},
					},
				},
			},
			{
				Title:   "Bottling Line Commissioning",
				Summary: "Commissioned a high-speed bottling line from FAT through SAT and operator handover.",
				Sections: []Section{
					{
						Heading: "Highlights",
						Items: []string{
							"Tuned conveyor accumulation logic to reach 24,000 bottles per hour",
							"Integrated vision reject system over EtherNet/IP",
							"Wrote the cause and effect matrix for line safety interlocks",
						},
					},
				},
			},
			{
				Title:   "Reusable PLC Block Library",
				Summary: "A library of tested function blocks for motors, valves and PID loops shared across projects.",
				Sections: []Section{
					{
						Heading:    "Why",
						Paragraphs: []string{"Every project re-implemented the same motor and valve logic with subtle differences."},
					},
					{
						Heading: "What it includes",
						Items:   []string{"Motor blocks with interlocks and run-hour counters", "Valve blocks with travel alarms", "Analog scaling with alarm limits"},
					},
				},
			},
		},
	}
}
