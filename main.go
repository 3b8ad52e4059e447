package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"shopStore/handlers"
	"shopStore/repository"
	"shopStore/services"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	ctx := context.Background()

	client, db := initMongo(ctx)
	defer client.Disconnect(ctx)
	rdb := initRedis()
	defer rdb.Close()
	writer := repository.NewKafkaWriter(kafkaBrokerURLs())
	defer writer.Close()

	pR, err := repository.NewProductRepository(db)
	if err != nil {
		panic(err)
	}
	cR, _ := repository.NewCategoryRepository(db)
	uR, _ := repository.NewUserRepository(db)
	cartR, _ := repository.NewCartRepository(db)
	oR, _ := repository.NewOrderRepository(db)
	cache, err := repository.NewCatalogCache(rdb, ctx)
	if err != nil {
		panic(err)
	}
	log.Info().Msg("redis connected")
	events, _ := repository.NewEventPublisher(writer)

	hp := handlers.HandlerParams{
		PrdService:  services.NewProductService(pR, cache),
		CatsService: services.NewCategoryService(cR),
		UsrService:  services.NewUserService(uR),
		CrtService:  services.NewCartService(pR, cartR),
		OrdService:  services.NewOrderService(pR, cartR, oR, events),
	}
	ha := handlers.NewHandler(hp)

	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware)
	router.Use(ha.RequestIdMiddleware)

	router.HandleFunc("/products", ha.CreateProduct).Methods("POST")
	router.HandleFunc("/products", ha.GetAllProducts).Methods("GET")
	router.HandleFunc("/products/{id}", ha.GetProduct).Methods("GET")
	router.HandleFunc("/products/{id}", ha.UpdateProduct).Methods("PUT")
	router.HandleFunc("/products/{id}", ha.DeleteProduct).Methods("DELETE")

	router.HandleFunc("/categories", ha.CreateCategory).Methods("POST")
	router.HandleFunc("/categories", ha.GetAllCategories).Methods("GET")

	router.HandleFunc("/users", ha.CreateUser).Methods("POST")
	router.HandleFunc("/users/{id}", ha.GetUser).Methods("GET")

	router.HandleFunc("/cart/{userId}", ha.GetCart).Methods("GET")
	router.HandleFunc("/cart/{userId}/add", ha.AddToCart).Methods("POST")
	router.HandleFunc("/cart/{userId}/remove", ha.RemoveFromCart).Methods("DELETE")

	router.HandleFunc("/order/{userId}", ha.Checkout).Methods("POST")
	router.HandleFunc("/orders/{id}", ha.GetOrder).Methods("GET")

	log.Info().Msg("starting server on :4000")
	if err := http.ListenAndServe(":4000", router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initMongo(ctx context.Context) (*mongo.Client, *mongo.Database) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "ecommerce_db"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		panic(err)
	}
	pingCtx, cncl := context.WithTimeout(ctx, 5*time.Second)
	defer cncl()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		panic("mongo is not working: " + err.Error())
	}
	log.Info().Msg("mongo connected")
	return client, client.Database(dbName)
}

func initRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: "",
		DB:       0,
	})
}

func kafkaBrokerURLs() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	return strings.Split(brokers, ",")
}
