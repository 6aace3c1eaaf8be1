package resource

// Default prompt lists. A catalog file can replace them at startup.
var (
	Locations = []string{
		"A submarine stuck at the bottom of the ocean",
		"The waiting room of a haunted dentist",
		"A wedding reception on a moving train",
		"The last open laundromat on Mars",
		"A medieval castle's kitchen during a siege",
		"Backstage at a children's talent show",
		"An elevator stuck between floors 41 and 42",
		"A lighthouse during a hurricane",
		"The lost and found office of an airport",
		"A ski lift that has stopped halfway up",
		"A pet store after closing time",
		"The break room of a superhero agency",
		"A silent meditation retreat",
		"A food truck at a music festival",
		"An escape room where the clues make no sense",
		"A museum of very ordinary objects",
		"The bridge of a starship with a broken coffee machine",
		"A rooftop garden in a thunderstorm",
		"A bowling alley on league night",
		"The set of a low-budget cooking show",
	}

	Characters = []string{
		"An overly enthusiastic tour guide",
		"A retired pirate who gets seasick",
		"A robot learning to feel emotions",
		"A nervous first-day intern",
		"A grandmother who is secretly a spy",
		"A wizard whose spells only half work",
		"A detective who is afraid of clues",
		"A celebrity chef with no sense of taste",
		"A ghost who wants to be noticed",
		"A conspiracy theorist mail carrier",
		"An astronaut back from a very long mission",
		"A kindergarten teacher on their last nerve",
		"A vampire on a strict diet",
		"A motivational speaker having a bad day",
		"A knight who is allergic to horses",
		"A fortune teller who only predicts weather",
		"A bodybuilder who collects porcelain dolls",
		"An alien pretending to be a realtor",
		"A stage magician whose rabbit quit",
		"A librarian who whispers everything dramatically",
	}

	Conflicts = []string{
		"Only one of them can win the lottery ticket they found",
		"They both claim to be the rightful owner of a goldfish",
		"One of them has to confess to breaking something priceless",
		"They must agree on a name for a new planet",
		"One wants to leave immediately, the other refuses to move",
		"They accidentally swapped phones this morning",
		"A secret recipe has gone missing",
		"They have five minutes to plan a surprise party",
		"One of them is convinced the other is a clone",
		"They are stuck sharing a single umbrella",
		"The power is out and the freezer is full of ice cream",
		"One has to teach the other a skill they just made up",
		"They both booked the same room for the same night",
		"A very important package must not be opened",
		"They need to rehearse a wedding toast for a stranger",
		"One of them is hiding an animal in their coat",
	}

	Twists = []string{
		"Someone's long-lost twin walks in",
		"Everything must now be said in rhyme",
		"Gravity suddenly doubles",
		"One character realizes they are dreaming",
		"The room starts slowly filling with bubbles",
		"A famous celebrity is watching from the corner",
		"It turns out they are related",
		"Every sentence must now start with the next letter of the alphabet",
		"A time traveler arrives with a warning",
		"All the lights go out for ten seconds",
		"One character can only speak in questions",
		"It is revealed that this is all a reality TV show",
		"Someone loses their voice and must mime",
		"A marching band passes through",
		"The scene is suddenly happening underwater",
	}
)
