package main

import (
	"context"
	"log"

	"github.com/hazelkitchen/recipebook/backend/config"
	"github.com/hazelkitchen/recipebook/backend/internal/model"
	"github.com/hazelkitchen/recipebook/backend/internal/repository"
)

var seedRecipes = []repository.RecipeDraft{
	{
		Title:              "Miso Butter Udon",
		Author:             "Hazel",
		Description:        "Chewy udon noodles in a glossy miso butter sauce, done in fifteen minutes.",
		ServingSuggestions: "Top with a soft-boiled egg and scallions.",
		Ingredients: model.StringList{
			"2 portions frozen udon",
			"2 tbsp unsalted butter",
			"1 tbsp white miso paste",
			"1 tsp soy sauce",
			"1 clove garlic, grated",
		},
		Instructions: model.StringList{
			"Boil the udon until just loosened, then drain, saving a splash of cooking water.",
			"Melt the butter, stir in miso, soy sauce and garlic.",
			"Toss the noodles through the sauce, loosening with cooking water as needed.",
		},
	},
	{
		Title:              "Sunday Tomato Soup",
		Author:             "Hazel",
		Description:        "Slow-simmered tomato soup from tinned tomatoes and not much else.",
		ServingSuggestions: "Serve with grilled cheese for dunking.",
		Ingredients: model.StringList{
			"2 tins whole peeled tomatoes",
			"1 onion, halved",
			"3 tbsp butter",
			"Salt to taste",
		},
		Instructions: model.StringList{
			"Put everything in a pot and simmer gently for 45 minutes.",
			"Fish out the onion, then blend until smooth.",
			"Season and serve hot.",
		},
	},
	{
		Title:              "Lemon Yogurt Cake",
		Author:             "Ren",
		Description:        "A one-bowl loaf cake that stays moist for days.",
		Ingredients: model.StringList{
			"1 cup plain yogurt",
			"1 cup sugar",
			"3 eggs",
			"Zest of 2 lemons",
			"1 2/3 cups flour",
			"2 tsp baking powder",
			"1/2 cup neutral oil",
		},
		Instructions: model.StringList{
			"Whisk yogurt, sugar, eggs and zest until smooth.",
			"Fold in flour and baking powder, then stream in the oil.",
			"Bake at 175C for about 50 minutes until a skewer comes out clean.",
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	repo, err := repository.FromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to build repository: %v", err)
	}

	ctx := context.Background()
	for _, draft := range seedRecipes {
		created, err := repo.Create(ctx, draft)
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", draft.Title, err)
		}
		log.Printf("Seeded recipe %d: %s", created.ID, created.Title)
	}
	log.Printf("Seeded %d recipes", len(seedRecipes))
}
