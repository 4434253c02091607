// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package knowledge holds the static knowledge base of the chatbot: topic
// categories pairing trigger keywords with curated answers for parents of
// autistic children. The data is embedded as literal values and never loaded
// from disk, so construction cannot fail.
package knowledge

// Category pairs a set of trigger patterns with the candidate responses for
// that topic. Patterns are lowercase; responses are returned verbatim.
type Category struct {
	Patterns  []string
	Responses []string
}

// DefaultResponse is returned when a message matches no category.
const DefaultResponse = "Je ne suis pas sûr de comprendre votre question. " +
	"Pourriez-vous reformuler ou me demander des conseils sur un sujet spécifique " +
	"comme la communication, les crises sensorielles, les routines, ou le développement social ?"

// Interaction returns the domain-specific categories, in matching priority
// order. The order is significant: callers must test categories front to back.
func Interaction() []Category {
	return interactionCategories
}

// General returns the small-talk categories (greetings, thanks, identity,
// definition), tested only after no interaction category matched.
func General() []Category {
	return generalCategories
}

var interactionCategories = []Category{
	{
		Patterns: []string{"comment communiquer", "comment parler", "langage", "communication"},
		Responses: []string{
			"Pour communiquer avec un enfant autiste, utilisez un langage clair et concis. Évitez les expressions idiomatiques et les métaphores.",
			"Les supports visuels comme les images ou pictogrammes peuvent faciliter la communication avec votre enfant.",
			"Soyez patient et laissez suffisamment de temps à votre enfant pour traiter l'information et répondre.",
			"Établissez un contact visuel si l'enfant est à l'aise avec cela, mais ne l'imposez pas s'il trouve cela difficile.",
		},
	},
	{
		Patterns: []string{"crise", "meltdown", "colère", "agitation", "calmer"},
		Responses: []string{
			"Pendant une crise sensorielle, créez un espace calme avec moins de stimuli (lumière tamisée, pas de bruit).",
			"Parlez doucement et calmement, sans élever la voix même si l'enfant est agité.",
			"Proposez des objets sensoriels apaisants comme une balle anti-stress ou une couverture lestée.",
			"Évitez de toucher l'enfant sans sa permission pendant une crise, cela pourrait aggraver la situation.",
		},
	},
	{
		Patterns: []string{"routine", "changement", "transition", "habitude"},
		Responses: []string{
			"Maintenez une routine prévisible - les enfants autistes se sentent souvent plus en sécurité avec une structure claire.",
			"Préparez votre enfant aux changements à l'avance avec des supports visuels ou des histoires sociales.",
			"Utilisez des minuteries visuelles pour faciliter les transitions entre activités.",
			"Créez un calendrier visuel pour que votre enfant puisse voir ce qui se passera dans la journée ou la semaine.",
		},
	},
	{
		Patterns: []string{"stimming", "comportement répétitif", "balancement", "autostimulation"},
		Responses: []string{
			"Le stimming (mouvements répétitifs) aide votre enfant à gérer ses émotions et sensations. N'essayez pas de l'arrêter s'il n'est pas dangereux.",
			"Proposez des alternatives acceptables si le comportement de stimming est problématique (ex: remplacer le tapotement bruyant par un coussin sensoriel).",
			"Les comportements répétitifs sont souvent une façon pour l'enfant de s'autoréguler et de gérer l'anxiété.",
			"Essayez de comprendre ce qui déclenche ces comportements pour mieux aider votre enfant.",
		},
	},
	{
		Patterns: []string{"école", "apprentissage", "éducation", "classe"},
		Responses: []string{
			"Collaborez étroitement avec les enseignants pour assurer la cohérence entre l'école et la maison.",
			"Demandez des aménagements spécifiques comme un endroit calme où votre enfant peut se retirer s'il est surstimulé.",
			"Les supports visuels et les emplois du temps peuvent aider votre enfant à suivre les routines scolaires.",
			"Certains enfants autistes apprennent mieux avec des approches pratiques et visuelles plutôt que verbales.",
		},
	},
	{
		Patterns: []string{"développement social", "amis", "jouer", "socialisation"},
		Responses: []string{
			"Encouragez les interactions sociales structurées avec des règles claires et des attentes explicites.",
			"Les groupes de compétences sociales peuvent aider votre enfant à apprendre les codes sociaux dans un environnement sécurisant.",
			"Commencez par des jeux parallèles (jouer à côté) avant de passer aux jeux coopératifs.",
			"Valorisez les forces et intérêts de votre enfant pour faciliter les connexions avec d'autres enfants partageant ces intérêts.",
		},
	},
	{
		Patterns: []string{"sensoriel", "sensibilité", "hypersensibilité", "hyposensibilité", "bruit", "toucher"},
		Responses: []string{
			"Identifiez les sensibilités sensorielles spécifiques de votre enfant et adaptez son environnement en conséquence.",
			"Proposez des écouteurs anti-bruit dans les environnements bruyants si votre enfant est sensible aux sons.",
			"Respectez les préférences tactiles - certains enfants préfèrent les vêtements doux sans étiquettes, d'autres ont besoin de pressions profondes.",
			"Créez un 'coin sensoriel' à la maison où votre enfant peut se retirer et réguler ses sensations.",
		},
	},
	{
		Patterns: []string{"autonomie", "indépendance", "compétences de vie", "habillage", "toilette"},
		Responses: []string{
			"Décomposez les tâches quotidiennes en petites étapes avec des instructions visuelles claires.",
			"Utilisez des séquences d'images pour enseigner des routines comme se brosser les dents ou s'habiller.",
			"Félicitez les progrès, même minimes, pour encourager l'autonomie.",
			"Soyez patient et cohérent dans vos attentes concernant l'indépendance.",
		},
	},
	{
		Patterns: []string{"thérapie", "intervention", "aide professionnelle", "spécialiste"},
		Responses: []string{
			"Les interventions précoces comme l'ABA, TEACCH, ou la thérapie d'intégration sensorielle peuvent être bénéfiques.",
			"L'orthophonie peut aider au développement du langage et des compétences sociales.",
			"L'ergothérapie peut améliorer la motricité et les défis sensoriels.",
			"Choisissez des professionnels qui respectent la neurodiversité et travaillent en partenariat avec les familles.",
		},
	},
	{
		Patterns: []string{"frères et sœurs", "fratrie", "famille", "parents"},
		Responses: []string{
			"Expliquez l'autisme aux frères et sœurs de manière adaptée à leur âge.",
			"Accordez du temps individuel à chaque enfant pour qu'aucun ne se sente négligé.",
			"Des groupes de soutien pour la fratrie peuvent être très bénéfiques.",
			"Prenez soin de vous aussi - le bien-être des parents est essentiel pour soutenir tous les membres de la famille.",
		},
	},
	{
		Patterns: []string{"alimentation", "manger", "nourriture", "repas", "difficulté alimentaire"},
		Responses: []string{
			"Respectez les sensibilités sensorielles liées à la nourriture (texture, odeur, goût).",
			"Introduisez de nouveaux aliments progressivement, aux côtés d'aliments familiers et appréciés.",
			"Évitez de forcer votre enfant à manger - cela peut créer des associations négatives avec les repas.",
			"Consultez un ergothérapeute spécialisé ou un diététicien si les difficultés alimentaires sont importantes.",
		},
	},
	{
		Patterns: []string{"sommeil", "dormir", "coucher", "nuit", "insomnie"},
		Responses: []string{
			"Établissez une routine de coucher cohérente et prévisible.",
			"Créez un environnement de sommeil adapté aux besoins sensoriels (obscurité, silence ou bruit blanc, température).",
			"Limitez les écrans au moins une heure avant le coucher.",
			"Une couverture lestée peut aider certains enfants à s'apaiser pour dormir.",
		},
	},
}

var generalCategories = []Category{
	{
		Patterns: []string{"bonjour", "salut", "hello", "hey"},
		Responses: []string{
			"Bonjour ! Je suis le chatbot spécialisé sur l'autisme. Comment puis-je vous aider aujourd'hui ?",
			"Salut ! Je suis là pour répondre à vos questions sur l'interaction avec votre enfant autiste.",
			"Bonjour ! Avez-vous des questions sur comment mieux communiquer avec votre enfant ?",
		},
	},
	{
		Patterns: []string{"merci", "thanks", "super", "utile"},
		Responses: []string{
			"Je suis heureux d'avoir pu vous aider. N'hésitez pas si vous avez d'autres questions !",
			"C'est avec plaisir. Souhaitez-vous des informations sur un autre aspect ?",
			"De rien ! Votre dévouement envers votre enfant est admirable.",
		},
	},
	{
		Patterns: []string{"qui es tu", "es-tu", "chatbot", "robot"},
		Responses: []string{
			"Je suis un chatbot conçu pour aider les parents d'enfants autistes avec des conseils pratiques et du soutien informationnel.",
			"Je suis un assistant virtuel spécialisé dans l'autisme. Je ne remplace pas un professionnel, mais je peux vous fournir des informations utiles.",
		},
	},
	{
		Patterns: []string{"autisme c'est quoi", "définition autisme", "qu'est-ce que l'autisme"},
		Responses: []string{
			"L'autisme est un trouble neurodéveloppemental qui affecte la communication sociale et implique des comportements répétitifs et des intérêts restreints. Chaque personne autiste est unique, avec ses propres forces et défis.",
			"Le trouble du spectre de l'autisme (TSA) est une condition neurologique qui influence la façon dont une personne perçoit le monde et interagit avec les autres. Il se manifeste différemment chez chaque individu.",
		},
	},
}
