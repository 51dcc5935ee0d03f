package catalog

import (
	"fmt"
	"strings"

	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

var diyProjects = map[string][]ds.DIYProject{
	"electronics": {
		{
			Title:       "Station de charge multi-appareils",
			Description: "Transformez votre ancien appareil en station de charge élégante et fonctionnelle",
			Materials:   []string{"Appareil électronique", "Câbles USB (3-4)", "Support en bois ou acrylique", "Colle forte", "Peinture (optionnel)", "Ruban isolant"},
			Steps: []string{
				"Nettoyez soigneusement l'appareil et retirez les composants non nécessaires",
				"Mesurez et découpez le support selon les dimensions de l'appareil",
				"Percez des trous pour les câbles USB dans le support",
				"Installez et fixez les câbles USB avec de la colle",
				"Assemblez le tout et testez la fonctionnalité",
				"Peignez et décorez selon vos goûts (optionnel)",
			},
			Difficulty:    "medium",
			EstimatedTime: "2-3 heures",
			SkillLevel:    "Intermédiaire",
			EcoImpact:     "Réduit les déchets électroniques et évite l'achat de nouvelles stations",
			Tips: []string{
				"Utilisez des câbles de qualité pour éviter les problèmes de charge",
				"Testez chaque câble avant l'assemblage final",
				"Ventilez bien la pièce si vous utilisez de la colle forte",
			},
			ToolsNeeded: []string{"Perceuse", "Ciseaux", "Pinceau", "Règle"},
			SafetyNotes: []string{"Débranchez l'appareil avant de le modifier", "Portez des gants lors de la manipulation"},
		},
		{
			Title:       "Lampe de bureau LED",
			Description: "Créez une lampe de bureau unique à partir d'un ancien appareil électronique",
			Materials:   []string{"Appareil électronique", "LED strip ou ampoule LED", "Interrupteur", "Câble électrique", "Support en métal", "Vis et écrous"},
			Steps: []string{
				"Démontez l'appareil et retirez les composants internes",
				"Installez la LED dans l'espace disponible",
				"Connectez l'interrupteur et le câble électrique",
				"Assemblez le support et fixez l'appareil",
				"Testez l'éclairage et ajustez si nécessaire",
			},
			Difficulty:    "hard",
			EstimatedTime: "3-4 heures",
			SkillLevel:    "Avancé",
			EcoImpact:     "Réutilise un appareil électronique et utilise des LED économes",
			Tips:          []string{"Assurez-vous de bien isoler les connexions électriques", "Choisissez une LED de couleur chaude pour un éclairage agréable"},
		},
	},
	"clothing": {
		{
			Title:       "Sac réutilisable personnalisé",
			Description: "Transformez vos vêtements usagés en sacs réutilisables uniques",
			Materials:   []string{"Vêtement en bon état", "Fil solide", "Aiguille", "Ciseaux", "Ruban ou corde", "Boutons (optionnel)"},
			Steps: []string{
				"Lavez et repassez le vêtement",
				"Découpez selon le patron choisi (sac à main, tote bag, etc.)",
				"Cousez les bords avec un point solide",
				"Ajoutez des poignées en ruban ou corde",
				"Décorez avec des boutons, broderies ou appliques",
				"Testez la solidité en y mettant des objets lourds",
			},
			Difficulty:    "easy",
			EstimatedTime: "1-2 heures",
			SkillLevel:    "Débutant",
			EcoImpact:     "Évite l'achat de nouveaux sacs et réduit les déchets textiles",
			Tips: []string{
				"Choisissez un tissu solide comme le denim ou la toile",
				"Renforcez les points de tension avec des points doubles",
				"Laissez des marges de couture suffisantes",
			},
			Variations: []string{"Sac à provisions", "Sac à dos", "Trousses", "Coussins décoratifs"},
		},
		{
			Title:       "Patchwork créatif",
			Description: "Créez un patchwork coloré à partir de vêtements usagés",
			Materials:   []string{"Vêtements de différentes couleurs", "Tissu de doublure", "Fil assorti", "Aiguille", "Ciseaux", "Règle"},
			Steps: []string{
				"Découpez des carrés ou rectangles de taille égale",
				"Arrangez les pièces selon le motif désiré",
				"Cousez les pièces ensemble en commençant par les rangées",
				"Assemblez les rangées pour former le patchwork",
				"Ajoutez une doublure si nécessaire",
				"Finissez les bords avec un ourlet",
			},
			Difficulty:    "medium",
			EstimatedTime: "2-3 heures",
			SkillLevel:    "Intermédiaire",
			EcoImpact:     "Réutilise plusieurs vêtements et crée un objet unique",
		},
	},
	"furniture": {
		{
			Title:       "Relooking complet de meuble",
			Description: "Donnez une nouvelle vie à vos meubles anciens avec une transformation complète",
			Materials:   []string{"Meuble à relooker", "Peinture (primaire + couleur)", "Pinceaux et rouleaux", "Papier de verre (grain 120, 220)", "Vernis ou cire", "Pinceau à vernis"},
			Steps: []string{
				"Démontez le meuble si possible (poignées, tiroirs)",
				"Poncez toute la surface avec du papier de verre grain 120",
				"Nettoyez et dépoussiérez soigneusement",
				"Appliquez une sous-couche si nécessaire",
				"Peignez avec la couleur choisie (2-3 couches fines)",
				"Laissez sécher entre chaque couche",
				"Appliquez une couche de vernis ou cire pour protéger",
				"Remontez le meuble et ajoutez de nouveaux accessoires",
			},
			Difficulty:    "medium",
			EstimatedTime: "1-2 jours",
			SkillLevel:    "Intermédiaire",
			EcoImpact:     "Évite l'achat de nouveaux meubles et réduit les déchets",
			Tips: []string{
				"Ventilez bien la pièce pendant la peinture",
				"Appliquez plusieurs couches fines plutôt qu'une couche épaisse",
				"Testez la couleur sur une petite surface avant de peindre tout le meuble",
			},
			StyleVariations: []string{"Vintage", "Moderne", "Scandinave", "Industriel", "Bohème"},
		},
		{
			Title:       "Étagère murale récup",
			Description: "Transformez des planches ou des caisses en étagère murale design",
			Materials:   []string{"Planches de récupération", "Vis et chevilles", "Perceuse", "Niveau", "Peinture (optionnel)", "Cire ou vernis"},
			Steps: []string{
				"Mesurez l'espace disponible et planifiez la disposition",
				"Découpez les planches aux bonnes dimensions",
				"Poncez et traitez le bois (cire ou vernis)",
				"Marquez les emplacements de fixation au mur",
				"Percez les trous et installez les chevilles",
				"Fixez les planches au mur avec des vis",
				"Vérifiez le niveau et ajustez si nécessaire",
			},
			Difficulty:    "medium",
			EstimatedTime: "2-3 heures",
			SkillLevel:    "Intermédiaire",
			EcoImpact:     "Réutilise du bois et évite l'achat de nouvelles étagères",
		},
	},
	"books": {
		{
			Title:       "Bibliothèque créative",
			Description: "Transformez vos livres en éléments décoratifs et fonctionnels",
			Materials:   []string{"Livres anciens", "Colle forte", "Ciseaux", "Peinture (optionnel)", "Ruban décoratif"},
			Steps: []string{
				"Sélectionnez des livres de même taille",
				"Collez les pages ensemble pour créer des blocs solides",
				"Découpez selon la forme désirée (coffret, support, etc.)",
				"Peignez ou décorez selon vos goûts",
				"Ajoutez des éléments décoratifs (ruban, boutons)",
			},
			Difficulty:    "easy",
			EstimatedTime: "1-2 heures",
			SkillLevel:    "Débutant",
			EcoImpact:     "Réutilise des livres non lus et crée des objets décoratifs",
		},
	},
	"toys": {
		{
			Title:       "Jardin de jouets",
			Description: "Créez un jardin miniature avec des jouets usagés",
			Materials:   []string{"Jouets en plastique", "Terreau", "Petites plantes", "Conteneur", "Gravier décoratif", "Petits accessoires"},
			Steps: []string{
				"Nettoyez soigneusement les jouets",
				"Préparez le conteneur avec des trous de drainage",
				"Ajoutez une couche de gravier puis de terreau",
				"Plantez les petites plantes",
				"Disposez les jouets comme éléments décoratifs",
				"Ajoutez du gravier décoratif pour finir",
			},
			Difficulty:    "easy",
			EstimatedTime: "1 heure",
			SkillLevel:    "Débutant",
			EcoImpact:     "Réutilise des jouets et crée un jardin miniature",
		},
	},
}

var generalProject = ds.DIYProject{
	Title:       "Projet créatif général",
	Description: "Laissez libre cours à votre créativité avec cet objet",
	Materials:   []string{"Matériaux de base", "Outils appropriés", "Colle ou fixations"},
	Steps: []string{
		"Analysez l'objet et ses possibilités",
		"Imaginez une nouvelle fonction ou utilisation",
		"Planifiez la transformation étape par étape",
		"Rassemblez les matériaux nécessaires",
		"Réalisez votre projet avec patience",
		"Testez et ajustez si nécessaire",
	},
	Difficulty:    "medium",
	EstimatedTime: "Variable",
	SkillLevel:    "Débutant",
	EcoImpact:     "Réduit les déchets et encourage la créativité",
	Tips:          []string{"Soyez créatif et n'ayez pas peur d'expérimenter", "Testez vos idées sur une petite échelle d'abord"},
}

var (
	poorConditionTips = []string{
		"L'objet étant en mauvais état, privilégiez les transformations simples",
		"Nettoyez soigneusement avant de commencer",
	}
	excellentConditionTips = []string{
		"L'objet étant en excellent état, vous pouvez vous permettre des transformations plus complexes",
	}
	furnitureNameWords = []string{"table", "chaise", "bureau"}
)

// DIYProjects returns reuse projects for an object, adapted to its condition
// and name. The description is accepted for API compatibility and not used.
func DIYProjects(category, objectName, description, condition string) []ds.DIYProject {
	templates, ok := diyProjects[category]
	if !ok {
		templates = []ds.DIYProject{generalProject}
	}

	projects := make([]ds.DIYProject, 0, len(templates))
	for _, tpl := range templates {
		p := cloneProject(tpl)

		switch condition {
		case ConditionPoor:
			p.Difficulty = "easy"
			p.Tips = append(p.Tips, poorConditionTips...)
		case ConditionExcellent:
			p.Tips = append(p.Tips, excellentConditionTips...)
		}

		if category != "furniture" && mentionsFurniture(objectName) {
			p.Title = fmt.Sprintf("Transformation de %s", objectName)
			p.Description = fmt.Sprintf("Donnez une nouvelle vie à votre %s", objectName)
		}

		projects = append(projects, p)
	}
	return projects
}

func mentionsFurniture(objectName string) bool {
	lower := strings.ToLower(objectName)
	for _, w := range furnitureNameWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func cloneProject(p ds.DIYProject) ds.DIYProject {
	p.Materials = cloneStrings(p.Materials)
	p.Steps = cloneStrings(p.Steps)
	p.Tips = cloneStrings(p.Tips)
	p.ToolsNeeded = cloneStrings(p.ToolsNeeded)
	p.SafetyNotes = cloneStrings(p.SafetyNotes)
	p.Variations = cloneStrings(p.Variations)
	p.StyleVariations = cloneStrings(p.StyleVariations)
	return p
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
