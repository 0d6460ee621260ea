package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/database"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/utils"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "daleel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM tickets")
	db.Exec("DELETE FROM places")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM articles")
	db.Exec("DELETE FROM areas")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	superHash, _ := bcrypt.GenerateFromPassword([]byte("super123"), bcrypt.DefaultCost)
	super := domain.User{
		Email:        "super@daleel-alsuez.com",
		PasswordHash: string(superHash),
		Role:         domain.RoleSuperAdmin,
		Name:         "مدير الدليل",
	}
	db.Create(&super)
	log.Println("Super admin created: super@daleel-alsuez.com / super123")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@daleel-alsuez.com",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "مشرف المحتوى",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@daleel-alsuez.com / admin123")

	users := []domain.User{}
	userEmails := []string{"ahmed@gmail.com", "sara@gmail.com", "mohamed@gmail.com"}
	userNames := []string{"أحمد حسن", "سارة علي", "محمد إبراهيم"}
	for i, email := range userEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			Name:         userNames[i],
			Phone:        fmt.Sprintf("+20 62 123 45%02d", i+10),
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== CATALOG ==================
	log.Println("Creating categories and areas...")

	categoryNames := []struct{ name, icon string }{
		{"مطاعم", "utensils"},
		{"مقاهي", "coffee"},
		{"صيدليات", "pill"},
		{"أطباء", "stethoscope"},
		{"ورش وصيانة", "wrench"},
		{"تسوق", "shopping-bag"},
	}
	categories := []domain.Category{}
	for i, c := range categoryNames {
		cat := domain.Category{
			Name:      c.name,
			Slug:      utils.Slugify(c.name),
			Icon:      c.icon,
			SortOrder: i,
		}
		db.Create(&cat)
		categories = append(categories, cat)
	}

	areaNames := []string{"حي السويس", "حي الأربعين", "حي عتاقة", "حي فيصل", "حي الجناين"}
	areas := []domain.Area{}
	for _, name := range areaNames {
		area := domain.Area{Name: name, Slug: utils.Slugify(name)}
		db.Create(&area)
		areas = append(areas, area)
	}

	// ================== PLACES ==================
	log.Println("Creating places...")

	type seedPlace struct {
		name        string
		description string
		catIdx      int
		areaIdx     int
		status      domain.PlaceStatus
	}
	seedPlaces := []seedPlace{
		{"مطعم أسماك البحر الأحمر", "أطباق بحرية طازجة من صيد اليوم", 0, 0, domain.StatusActive},
		{"قهوة الميناء", "مقهى بلدي على الكورنيش", 1, 0, domain.StatusActive},
		{"صيدلية الشفاء", "خدمة 24 ساعة وتوصيل للمنازل", 2, 1, domain.StatusActive},
		{"عيادة د. هالة يوسف", "أخصائية أطفال وحديثي الولادة", 3, 2, domain.StatusActive},
		{"ورشة الأمانة للسيارات", "ميكانيكا وكهرباء سيارات", 4, 3, domain.StatusPending},
		{"سوبر ماركت الجناين", "بقالة وخضار وفاكهة", 5, 4, domain.StatusPending},
	}

	places := []domain.Place{}
	for i, sp := range seedPlaces {
		owner := users[i%len(users)]
		p := domain.Place{
			Name:        sp.name,
			Slug:        utils.Slugify(sp.name),
			Description: sp.description,
			Type:        domain.PlaceTypeBusiness,
			CategoryID:  categories[sp.catIdx].ID,
			AreaID:      &areas[sp.areaIdx].ID,
			Address:     fmt.Sprintf("شارع الجيش، %s", areas[sp.areaIdx].Name),
			Phone:       fmt.Sprintf("+20 62 333 44%02d", i+10),
			Status:      sp.status,
			CreatedBy:   owner.ID,
		}
		db.Create(&p)
		places = append(places, p)

		if sp.status == domain.StatusPending {
			link := "/my-places"
			db.Create(&notification.Notification{
				UserID:  owner.ID,
				Type:    notification.TypeSystem,
				Title:   "تم استلام طلبك",
				Message: fmt.Sprintf("تم استلام طلب إضافة \"%s\" وهو الآن قيد المراجعة", p.Name),
				Link:    &link,
			})
		}
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	comments := []string{"مكان ممتاز وخدمة رائعة", "تجربة جيدة بشكل عام", "الأسعار مناسبة والمعاملة طيبة"}
	for i, p := range places {
		if p.Status != domain.StatusActive {
			continue
		}
		reviewer := users[(i+1)%len(users)]
		db.Create(&domain.Review{
			PlaceID: p.ID,
			UserID:  reviewer.ID,
			Rating:  4 + i%2,
			Comment: comments[i%len(comments)],
		})
	}

	// ================== EVENTS & ARTICLES ==================
	log.Println("Creating events and articles...")

	eventEnd := time.Now().AddDate(0, 0, 16)
	db.Create(&domain.Event{
		Title:       "معرض السويس للحرف اليدوية",
		Description: "معرض سنوي للمنتجات اليدوية على أرض المحافظة",
		Location:    "قاعة المؤتمرات، حي السويس",
		StartsAt:    time.Now().AddDate(0, 0, 14),
		EndsAt:      &eventEnd,
		CreatedBy:   super.ID,
	})

	publishedAt := time.Now().AddDate(0, 0, -3)
	db.Create(&domain.Article{
		Title:       "أفضل أماكن السمك في السويس",
		Slug:        utils.Slugify("أفضل أماكن السمك في السويس"),
		Body:        "جولة على مطاعم الأسماك في أحياء المدينة وما يميز كل واحد منها.",
		Published:   true,
		PublishedAt: &publishedAt,
		CreatedBy:   admin.ID,
	})

	log.Println("Seed completed.")
}
