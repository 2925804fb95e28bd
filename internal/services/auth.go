package services

import (
  "context"
  "crypto/rand"
  "fmt"
  "math/big"
  "strings"
  "time"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/platform/apierr"
  "github.com/avenlabs/marketops-backend/internal/repos"
  "github.com/avenlabs/marketops-backend/internal/types"
)

// AuthService is the mock-auth flow carried over from the original frontend:
// send-otp issues a one-time code, verify-otp trades it for a signed token.
// The token only proves the OTP roundtrip happened; there is no refresh and
// no revocation. SendOTP returns the plain code to the caller because no
// mail delivery exists in this backend.
type AuthService interface {
  SendOTP(ctx context.Context, email string) (challengeID string, code string, err error)
  VerifyOTP(ctx context.Context, challengeID, code string) (token string, err error)
  ParseToken(token string) (email string, role string, err error)
}

type authClaims struct {
  Role string `json:"role"`
  jwt.RegisteredClaims
}

type authService struct {
  log          *logger.Logger
  collections  repos.CollectionRepo
  jwtSecretKey string
  accessTTL    time.Duration
  otpTTL       time.Duration
}

func NewAuthService(log *logger.Logger, collections repos.CollectionRepo, jwtSecretKey string, accessTTL, otpTTL time.Duration) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    log:          serviceLog,
    collections:  collections,
    jwtSecretKey: jwtSecretKey,
    accessTTL:    accessTTL,
    otpTTL:       otpTTL,
  }
}

func (as *authService) SendOTP(ctx context.Context, email string) (string, string, error) {
  email = strings.TrimSpace(strings.ToLower(email))
  if email == "" {
    return "", "", apierr.Validation("email is required")
  }

  code, err := generateOTPCode()
  if err != nil {
    return "", "", fmt.Errorf("Failed to generate OTP code: %w", err)
  }
  hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
  if err != nil {
    return "", "", fmt.Errorf("Failed to hash OTP code: %w", err)
  }

  challenge := types.OTPChallenge{
    ID:        uuid.NewString(),
    Email:     email,
    CodeHash:  string(hash),
    ExpiresAt: time.Now().UTC().Add(as.otpTTL),
    CreatedAt: time.Now().UTC(),
  }

  challenges := as.collections.Load(ctx, types.CollectionOTPChallenges)
  rec, err := encodeRecord(challenge)
  if err != nil {
    return "", "", fmt.Errorf("Failed to encode OTP challenge: %w", err)
  }
  challenges = append(challenges, rec)
  if err := as.collections.Save(ctx, types.CollectionOTPChallenges, challenges); err != nil {
    as.log.Warn("OTP challenge write failed, continuing with in-memory result", "challenge_id", challenge.ID, "error", err)
  }
  return challenge.ID, code, nil
}

func (as *authService) VerifyOTP(ctx context.Context, challengeID, code string) (string, error) {
  if strings.TrimSpace(challengeID) == "" || strings.TrimSpace(code) == "" {
    return "", apierr.Validation("challenge_id and code are required")
  }

  challenges := as.collections.Load(ctx, types.CollectionOTPChallenges)
  idx := -1
  var challenge types.OTPChallenge
  for i, rec := range challenges {
    var c types.OTPChallenge
    if err := decodeRecord(rec, &c); err != nil {
      continue
    }
    if c.ID == challengeID {
      idx = i
      challenge = c
      break
    }
  }
  if idx < 0 {
    return "", apierr.NotFound("challenge %s not found", challengeID)
  }
  if challenge.Used {
    return "", apierr.Validation("challenge already used")
  }
  if time.Now().UTC().After(challenge.ExpiresAt) {
    return "", apierr.Validation("challenge expired")
  }
  if err := bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)); err != nil {
    return "", apierr.Validation("invalid code")
  }

  challenge.Used = true
  if rec, err := encodeRecord(challenge); err == nil {
    challenges[idx] = rec
    if err := as.collections.Save(ctx, types.CollectionOTPChallenges, challenges); err != nil {
      as.log.Warn("OTP challenge write failed after verify", "challenge_id", challengeID, "error", err)
    }
  }

  role := as.lookupRole(ctx, challenge.Email)
  now := time.Now().UTC()
  claims := authClaims{
    Role: role,
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   challenge.Email,
      IssuedAt:  jwt.NewNumericDate(now),
      ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    return "", fmt.Errorf("Failed to sign token: %w", err)
  }
  return signed, nil
}

func (as *authService) ParseToken(tokenString string) (string, string, error) {
  parsed, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return "", "", err
  }
  claims, ok := parsed.Claims.(*authClaims)
  if !ok || !parsed.Valid {
    return "", "", fmt.Errorf("invalid token")
  }
  return claims.Subject, claims.Role, nil
}

// lookupRole reads the role off the users collection; unknown emails get
// the weakest role rather than an error, mirroring the mock-auth contract.
func (as *authService) lookupRole(ctx context.Context, email string) string {
  users := as.collections.Load(ctx, types.CollectionUsers)
  for _, rec := range users {
    var u types.User
    if err := decodeRecord(rec, &u); err != nil {
      continue
    }
    if strings.EqualFold(u.Email, email) {
      return u.Role
    }
  }
  return "user"
}

func generateOTPCode() (string, error) {
  n, err := rand.Int(rand.Reader, big.NewInt(1000000))
  if err != nil {
    return "", err
  }
  return fmt.Sprintf("%06d", n.Int64()), nil
}
