//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo/expenses/internal/domain"
	ikafka "github.com/kakeibo/expenses/internal/kafka"
	"github.com/kakeibo/expenses/internal/ports"
	pgrepo "github.com/kakeibo/expenses/internal/repo/postgres"
	"github.com/kakeibo/expenses/internal/testutil"
	"github.com/kakeibo/expenses/internal/usecase"
	"github.com/kakeibo/expenses/pkg/logger"
	"github.com/kakeibo/expenses/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// submission — сырой JSON платёжного сообщения, как его шлют продюсеры.
func submission(p domain.Payment) []byte {
	raw, _ := json.Marshal(map[string]string{
		"account_category": string(p.AccountCategory),
		"payee":            p.Payee,
		"amount":           p.Amount.String(),
		"payment_month":    p.PaymentMonth,
		"payment_method":   string(p.PaymentMethod),
	})
	return raw
}

// findByPayee — платежи с данным получателем (payee у нас уникален на тест).
func findByPayee(ctx context.Context, t *testing.T, repo *pgrepo.PaymentRepository, payee string) []domain.Payment {
	t.Helper()
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	var found []domain.Payment
	for _, p := range all {
		if p.Payee == payee {
			found = append(found, p)
		}
	}
	return found
}

// waitForPayee — ждёт появления хотя бы одной записи с данным payee.
func waitForPayee(ctx context.Context, t *testing.T, repo *pgrepo.PaymentRepository, payee string) []domain.Payment {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for {
		if found := findByPayee(ctx, t, repo, payee); len(found) > 0 {
			return found
		}
		if time.Now().After(deadline) {
			t.Fatalf("payment payee=%s not saved in time", payee)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// 1) Валидное сообщение из Kafka сохраняется в БД
func TestKafka_Valid_Saved_TC(t *testing.T) {
	ctx, cancel, _, repo, logg, cleanup, kf, _ := newStack(t)
	defer cancel()
	defer cleanup()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	svc := usecase.NewPaymentService(repo, logg, validate.NewPaymentValidator())
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 5 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)

	p := testutil.MakePayment()
	writeMsg(t, ctx, kf.Brokers, topic, submission(p))

	found := waitForPayee(ctx, t, repo, p.Payee)
	require.Len(t, found, 1)
	require.Equal(t, p.AccountCategory, found[0].AccountCategory)
	require.True(t, found[0].Amount.Equal(p.Amount))
}

// 2) Не-JSON сообщение пропускается, валидное после него — сохраняется
func TestKafka_Skip_InvalidJSON_Then_SaveValid_TC(t *testing.T) {
	ctx, cancel, _, repo, logg, cleanup, kf, _ := newStack(t)
	defer cancel()
	defer cleanup()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-invalid-json-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	svc := usecase.NewPaymentService(repo, logg, validate.NewPaymentValidator())
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	time.Sleep(1500 * time.Millisecond)

	// 1) Шлём мусор
	writeMsg(t, ctx, kf.Brokers, topic, []byte("not-a-json"))

	// 2) Шлём валидный платёж
	p := testutil.MakePayment()
	writeMsg(t, ctx, kf.Brokers, topic, submission(p))

	// 3) Валидный дошёл — значит, мусор пропущен, а не заблокировал партицию
	found := waitForPayee(ctx, t, repo, p.Payee)
	require.Len(t, found, 1)
}

// 3) Валидационная ошибка (пустой payee) пропускается; следующий валидный — сохраняется
func TestKafka_Skip_ValidationError_Then_SaveValid_TC(t *testing.T) {
	ctx, cancel, _, repo, logg, cleanup, kf, _ := newStack(t)
	defer cancel()
	defer cleanup()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-invalid-payment-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	svc := usecase.NewPaymentService(repo, logg, validate.NewPaymentValidator())
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	time.Sleep(1500 * time.Millisecond)

	// 1) Платёж без payee — триггер валидатора
	bad := testutil.MakePayment()
	bad.Payee = ""
	writeMsg(t, ctx, kf.Brokers, topic, submission(bad))

	// 2) Следом валидный
	ok := testutil.MakePayment()
	writeMsg(t, ctx, kf.Brokers, topic, submission(ok))

	// 3) Валидный сохранён, испорченного в БД нет
	found := waitForPayee(ctx, t, repo, ok.Payee)
	require.Len(t, found, 1)
	require.Empty(t, findByPayee(ctx, t, repo, ""))
}

// 4) StartOffset="last": сообщения, опубликованные до старта консьюмера, игнорируются
func TestKafka_StartOffset_Last_IgnoresOld_TC(t *testing.T) {
	ctx, cancel, _, repo, logg, cleanup, kf, _ := newStack(t)
	defer cancel()
	defer cleanup()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-last-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	// 1) Публикуем "старое" ДО консьюмера
	old := testutil.MakePayment()
	writeMsg(t, ctx, kf.Brokers, topic, submission(old))

	// 2) Запускаем консьюмера с StartOffset="last"
	svc := usecase.NewPaymentService(repo, logg, validate.NewPaymentValidator())
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: "last",
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	// 3) Публикуем новое несколько раз до появления в БД — так мы гарантируем, что одно из
	//    сообщений окажется после базовой позиции, с которой читает консьюмер.
	fresh := testutil.MakePayment()
	raw := submission(fresh)

	deadline := time.Now().Add(20 * time.Second)
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	for {
		writeMsg(t, ctx, kf.Brokers, topic, raw)

		if len(findByPayee(ctx, t, repo, fresh.Payee)) > 0 {
			// "старое" не попало
			require.Empty(t, findByPayee(ctx, t, repo, old.Payee))
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("new payment payee=%s not saved in time", fresh.Payee)
		}
		<-ticker.C
	}
}

// 5) At-least-once через рестарт: при временной ошибке и отсутствии коммита — передоставка после перезапуска
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "payments-itc")
	require.NoError(t, err)
	defer func() { _ = stopKF(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = closer() }()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-redelivery-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	p := testutil.MakePayment()
	writeMsg(t, ctx, kf.Brokers, topic, submission(p))

	// Фаза 1: всегда временная ошибка => оффсет НЕ коммитится
	consumerFail := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 300 * time.Millisecond, // короткий процесс-таймаут
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       300 * time.Millisecond,
	}, alwaysTempFailSaver{}, logg)

	runCtx1, cancelRun1 := context.WithCancel(ctx)
	go func() { _ = consumerFail.Run(runCtx1) }()

	// Ждём немного, чтобы сообщение точно было Fetch'ed и обработка упала
	time.Sleep(2 * time.Second)
	cancelRun1() // выходим без коммита

	// Фаза 2: поднимаем PG и нормальный сервис
	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrations(pg.DSN))

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewPaymentRepository(pool)
	svc := usecase.NewPaymentService(repo, logg, validate.NewPaymentValidator())

	consumerOK := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group, // та же группа — перехватываем некоммиченное
		StartOffset: "first",
	}, svc, logg)

	runCtx2, cancelRun2 := context.WithCancel(ctx)
	defer cancelRun2()
	go func() { _ = consumerOK.Run(runCtx2) }()

	// Передоставленное сообщение сохраняется
	found := waitForPayee(ctx, t, repo, p.Payee)
	require.Len(t, found, 1)
}

// 6) Дубликат сообщения даёт вторую запись: доставка at-least-once,
// дедупликации на этом уровне нет
func TestKafka_DuplicateMessage_CreatesTwoRows_TC(t *testing.T) {
	ctx, cancel, _, repo, logg, cleanup, kf, _ := newStack(t)
	defer cancel()
	defer cleanup()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-dup-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	svc := usecase.NewPaymentService(repo, logg, validate.NewPaymentValidator())
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: "first",
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()
	time.Sleep(1500 * time.Millisecond)

	p := testutil.MakePayment()
	raw := submission(p)

	// Публикуем дважды подряд
	writeMsg(t, ctx, kf.Brokers, topic, raw)
	writeMsg(t, ctx, kf.Brokers, topic, raw)

	deadline := time.Now().Add(20 * time.Second)
	for {
		found := findByPayee(ctx, t, repo, p.Payee)
		if len(found) == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("want 2 rows for payee=%s, got %d", p.Payee, len(found))
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// -----------------функции-помощники-----------------

func newStack(t *testing.T) (
	ctx context.Context,
	cancel func(),
	pool *pgxpool.Pool,
	repo *pgrepo.PaymentRepository,
	logg ports.Logger,
	cleanup func(),
	kf *testutil.KafkaEnv,
	stopKF func(context.Context) error,
) {
	t.Helper()

	// Длинный контекст — на контейнеры
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, testutil.ApplyMigrations(pg.DSN))

	kf, stopKF, err = testutil.StartKafkaTC(ctxStart, "payments-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// Короткий контекст — сам тест
	ctx, cancel = context.WithTimeout(context.Background(), 60*time.Second)

	// Пул
	pool, err = pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	// Логгер (+ обёртка cleanup)
	var closer func() error
	logg, closer, err = logger.NewZapLogger(false)
	require.NoError(t, err)
	cleanup = func() { _ = closer() }

	repo = pgrepo.NewPaymentRepository(pool)
	return
}

func writeMsg(t *testing.T, ctx context.Context, brokers []string, topic string, payload []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Value: payload}))
}

// временная "сетеподобная" ошибка
type tempNetErr struct{}

func (tempNetErr) Error() string   { return "temporary failure" }
func (tempNetErr) Temporary() bool { return true }
func (tempNetErr) Timeout() bool   { return true } // как у net.Error

// сервис-заглушка, который всегда возвращает временную ошибку (чтобы не коммитить оффсет)
type alwaysTempFailSaver struct{}

func (alwaysTempFailSaver) SaveFromMessage(ctx context.Context, _ []byte) error {
	return tempNetErr{}
}
